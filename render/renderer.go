package render

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/juwon-cha/TycoonPlayableAD/engine"
	"github.com/juwon-cha/TycoonPlayableAD/event"
)

// NoDeskMessage is the toast shown when every desk is taken
const NoDeskMessage = "No free desk"

// Renderer draws the world onto a tcell screen
// It runs on the game loop after each tick and learns about changes through routed notifications
type Renderer struct {
	screen tcell.Screen
	world  *engine.World

	camera *Camera
	toast  Toast
	debug  bool

	gold  int64
	costs event.CostsChangedPayload

	statFrames *atomic.Int64
}

// NewRenderer creates a renderer bound to screen and world
func NewRenderer(screen tcell.Screen, world *engine.World) *Renderer {
	return &Renderer{
		screen:     screen,
		world:      world,
		camera:     NewCamera(),
		statFrames: world.Resources.Status.Counter("render.frames"),
	}
}

// EventTypes returns the event types the renderer handles
func (r *Renderer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGoldChanged,
		event.EventCostsChanged,
		event.EventNoDeskAvailable,
		event.EventZoomOut,
		event.EventDebugToggle,
		event.EventResize,
	}
}

// HandleEvent updates view state from notifications
func (r *Renderer) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGoldChanged:
		if p, ok := ev.Payload.(event.GoldChangedPayload); ok {
			r.gold = p.Balance
		}
	case event.EventCostsChanged:
		if p, ok := ev.Payload.(event.CostsChangedPayload); ok {
			r.costs = p
		}
	case event.EventNoDeskAvailable:
		r.toast.Show(NoDeskMessage)
	case event.EventZoomOut:
		r.camera.ZoomOut()
	case event.EventDebugToggle:
		r.debug = !r.debug
	case event.EventResize:
		r.screen.Sync()
	}
}

// Camera returns the view camera
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Toast returns the message toast
func (r *Renderer) Toast() *Toast {
	return &r.toast
}

// Debug reports whether the metrics overlay is shown
func (r *Renderer) Debug() bool {
	return r.debug
}

// Update advances view-only animations
func (r *Renderer) Update(dt time.Duration) {
	r.camera.Update(dt)
	r.toast.Update(dt)
}

// Draw renders one full frame
func (r *Renderer) Draw() {
	r.screen.Clear()
	width, height := r.screen.Size()
	r.fill(Rect{W: width, H: height}, ' ', tcell.StyleDefault.Background(RgbBackground))

	r.drawOffices(width, height)
	r.drawQueue(width, height)
	r.drawWorkers(width, height)
	r.drawIndicators(width, height)
	r.drawHUD(width, height)
	r.drawButtons(width, height)
	r.drawToast(width, height)
	if r.debug {
		r.drawDebug(width, height)
	}

	r.screen.Show()
	r.statFrames.Add(1)
}
