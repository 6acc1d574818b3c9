package core

// Easing maps normalized time [0,1] to normalized progress
type Easing uint8

const (
	EaseLinear Easing = iota
	EaseCubicIn
	EaseCubicOut
	EaseBackOut
)

// Apply evaluates the curve at t, clamping t into [0,1]
func (e Easing) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	switch e {
	case EaseCubicIn:
		return t * t * t
	case EaseCubicOut:
		u := t - 1
		return u*u*u + 1
	case EaseBackOut:
		// Overshoot constant matches the common 1.70158 back curve
		const s = 1.70158
		u := t - 1
		return u*u*((s+1)*u+s) + 1
	default:
		return t
	}
}

func (e Easing) String() string {
	switch e {
	case EaseLinear:
		return "linear"
	case EaseCubicIn:
		return "cubicIn"
	case EaseCubicOut:
		return "cubicOut"
	case EaseBackOut:
		return "backOut"
	default:
		return "unknown"
	}
}
