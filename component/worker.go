package component

import (
	"time"

	"github.com/juwon-cha/TycoonPlayableAD/core"
)

// WorkPhase is the position of a worker inside its work cycle
type WorkPhase uint8

const (
	// PhaseIdle marks a worker parked in the pool
	PhaseIdle WorkPhase = iota
	// PhaseQueued marks a worker waiting in line
	PhaseQueued
	// PhaseTravel is the walk from the line to the assigned desk, desk already claimed
	PhaseTravel
	// PhaseWork runs the progress indicator, pays out on completion
	PhaseWork
	// PhaseReturn is the walk from the desk to the exit, desk released on arrival
	PhaseReturn
)

func (p WorkPhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseQueued:
		return "Queued"
	case PhaseTravel:
		return "Travel"
	case PhaseWork:
		return "Work"
	case PhaseReturn:
		return "Return"
	default:
		return "Unknown"
	}
}

// WorkerComponent is a reusable unit that occupies one desk per work cycle
type WorkerComponent struct {
	Working bool
	Phase   WorkPhase

	// Remaining is the time left in the current timed phase
	Remaining time.Duration

	// Desk is a weak reference, the desk may be destroyed by a regrid mid-cycle
	Desk core.Entity

	// Indicator is the progress indicator held during PhaseWork
	Indicator core.Entity
}
