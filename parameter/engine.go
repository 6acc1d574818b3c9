package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the clock tick, the frame is drawn once per tick (~60 FPS)
	GameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps a single tick's delta after stalls (suspended terminal, debugger)
	MaxTickDelta = 250 * time.Millisecond

	// EventLoopIterations bounds queue drains per tick so handler-emitted events settle
	EventLoopIterations = 8
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = EventQueueSize - 1
)
