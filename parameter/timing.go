package parameter

import "time"

// Work cycle phases
const (
	TravelDuration = 500 * time.Millisecond
	WorkDuration   = 2 * time.Second
	ReturnDuration = 500 * time.Millisecond
)

// Waiting line animation
const (
	QueueShiftDuration = 300 * time.Millisecond
)

// Camera framing
const (
	CameraFocusDuration = 1 * time.Second
	CameraZoomOutScale  = 0.55
)

// Toast message lifetime: pop-in, hold, fade
const (
	ToastPopDuration  = 200 * time.Millisecond
	ToastHoldDuration = 800 * time.Millisecond
	ToastFadeDuration = 500 * time.Millisecond
)
