package component

import (
	"time"

	"github.com/juwon-cha/TycoonPlayableAD/core"
)

// PositionComponent is the displayed world position of an entity
type PositionComponent struct {
	core.Vec2
}

// MotionComponent tweens PositionComponent from From to To
type MotionComponent struct {
	From     core.Vec2
	To       core.Vec2
	Elapsed  time.Duration
	Duration time.Duration
	Ease     core.Easing
}

// Done reports whether the tween reached its target
func (m MotionComponent) Done() bool {
	return m.Elapsed >= m.Duration
}

// Sample returns the eased position at the current elapsed time, exactly To once done
func (m MotionComponent) Sample() core.Vec2 {
	if m.Duration <= 0 || m.Elapsed >= m.Duration {
		return m.To
	}
	t := float64(m.Elapsed) / float64(m.Duration)
	return core.Lerp(m.From, m.To, m.Ease.Apply(t))
}
