package render

import (
	"time"

	"github.com/juwon-cha/TycoonPlayableAD/core"
	"github.com/juwon-cha/TycoonPlayableAD/parameter"
)

// Toast is a transient message: pop in, hold, fade out
type Toast struct {
	Text    string
	elapsed time.Duration
	active  bool
}

// Show restarts the toast with text
func (t *Toast) Show(text string) {
	t.Text = text
	t.elapsed = 0
	t.active = true
}

// Visible reports whether the toast is on screen
func (t *Toast) Visible() bool {
	return t.active
}

// Update advances the toast timeline
func (t *Toast) Update(dt time.Duration) {
	if !t.active {
		return
	}
	t.elapsed += dt
	if t.elapsed >= toastLifetime() {
		t.active = false
	}
}

// Scale is the pop-in size factor, overshooting with back-out easing
func (t *Toast) Scale() float64 {
	if t.elapsed >= parameter.ToastPopDuration {
		return 1
	}
	return core.EaseBackOut.Apply(float64(t.elapsed) / float64(parameter.ToastPopDuration))
}

// Opacity is 1 until the fade starts, then falls linearly to 0
func (t *Toast) Opacity() float64 {
	if !t.active {
		return 0
	}
	fadeStart := parameter.ToastPopDuration + parameter.ToastHoldDuration
	if t.elapsed <= fadeStart {
		return 1
	}
	return 1 - float64(t.elapsed-fadeStart)/float64(parameter.ToastFadeDuration)
}

func toastLifetime() time.Duration {
	return parameter.ToastPopDuration + parameter.ToastHoldDuration + parameter.ToastFadeDuration
}
