package engine

import (
	"time"

	"github.com/juwon-cha/TycoonPlayableAD/event"
	"github.com/juwon-cha/TycoonPlayableAD/status"
)

// Resource holds the world's singleton state, reached through World.Resources
type Resource struct {
	Time     *TimeResource
	Settings Settings
	Economy  *Economy
	Queue    *WorkQueue
	Progress *ProgressResource
	Events   *event.EventQueue

	// Telemetry
	Status *status.Registry
}

// TimeResource is updated at the start of every tick
type TimeResource struct {
	// DeltaTime is the game time consumed by the current tick
	DeltaTime time.Duration

	// Elapsed is total game time since the world was built
	Elapsed time.Duration

	// FrameNumber counts ticks
	FrameNumber int64
}

// Advance moves the tick clock forward by dt
func (t *TimeResource) Advance(dt time.Duration) {
	t.DeltaTime = dt
	t.Elapsed += dt
	t.FrameNumber++
}

// ProgressResource tracks office unlocks
type ProgressResource struct {
	Unlocked   int
	MaxOffices int

	// ZoomedOut latches once the whole-map view has been triggered
	ZoomedOut bool
}
