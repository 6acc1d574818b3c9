package parameter

import "time"

// Hold-to-work accelerator
const (
	// HoldInitialInterval is the repeat interval when the work trigger is first held
	HoldInitialInterval = 500 * time.Millisecond

	// HoldMinInterval is the fastest repeat interval
	HoldMinInterval = 50 * time.Millisecond

	// HoldAcceleration is seconds of interval removed per second held
	HoldAcceleration = 0.2

	// KeyHoldTimeout releases a keyboard hold when no auto-repeat pulse arrives in time
	// Terminals report key presses only, never releases
	KeyHoldTimeout = 250 * time.Millisecond
)
