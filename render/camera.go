package render

import (
	"time"

	"github.com/juwon-cha/TycoonPlayableAD/core"
	"github.com/juwon-cha/TycoonPlayableAD/parameter"
)

// viewSpan is the world extent that fills the shorter screen axis at scale 1
const viewSpan = 500.0

// Camera maps world units to terminal cells and tweens between framings
type Camera struct {
	Center core.Vec2
	Scale  float64

	fromCenter core.Vec2
	toCenter   core.Vec2
	fromScale  float64
	toScale    float64
	elapsed    time.Duration
	duration   time.Duration
	ease       core.Easing
}

// NewCamera frames the primary office at scale 1
func NewCamera() *Camera {
	c := parameter.OfficeOrigins[parameter.PrimaryOfficeIndex]
	return &Camera{Center: c, Scale: 1, toCenter: c, toScale: 1}
}

// TweenTo starts a framing change
func (c *Camera) TweenTo(center core.Vec2, scale float64, d time.Duration, ease core.Easing) {
	c.fromCenter, c.fromScale = c.Center, c.Scale
	c.toCenter, c.toScale = center, scale
	c.elapsed = 0
	c.duration = d
	c.ease = ease
	if d <= 0 {
		c.Center, c.Scale = center, scale
	}
}

// ZoomOut frames the whole map
func (c *Camera) ZoomOut() {
	c.TweenTo(parameter.QueueOrigin, parameter.CameraZoomOutScale, parameter.CameraFocusDuration, core.EaseCubicOut)
}

// Animating reports whether a tween is running
func (c *Camera) Animating() bool {
	return c.elapsed < c.duration
}

// Update advances the tween by dt
func (c *Camera) Update(dt time.Duration) {
	if !c.Animating() {
		return
	}
	c.elapsed += dt
	if c.elapsed >= c.duration {
		c.elapsed = c.duration
		c.Center, c.Scale = c.toCenter, c.toScale
		return
	}
	t := c.ease.Apply(float64(c.elapsed) / float64(c.duration))
	c.Center = core.Lerp(c.fromCenter, c.toCenter, t)
	c.Scale = core.LerpFloat(c.fromScale, c.toScale, t)
}

// cellsPerUnit returns horizontal cells per world unit; rows use half since cells are twice as tall
func (c *Camera) cellsPerUnit(width, height int) float64 {
	span := float64(width)
	if rows := float64(2 * height); rows < span {
		span = rows
	}
	return c.Scale * span / viewSpan
}

// Project converts a world position to a cell, world y grows upward
func (c *Camera) Project(p core.Vec2, width, height int) (int, int) {
	k := c.cellsPerUnit(width, height)
	x := float64(width)/2 + (p.X-c.Center.X)*k
	y := float64(height)/2 - (p.Y-c.Center.Y)*k/2
	return int(x + 0.5), int(y + 0.5)
}

// Extent converts a world size to cells
func (c *Camera) Extent(w, h float64, width, height int) (int, int) {
	k := c.cellsPerUnit(width, height)
	return int(w*k + 0.5), int(h*k/2 + 0.5)
}
