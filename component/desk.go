package component

import "github.com/juwon-cha/TycoonPlayableAD/core"

// DeskComponent is an exclusive work slot owned by one office
type DeskComponent struct {
	Office core.Entity
	Slot   int

	// Offset is relative to the office origin
	Offset core.Vec2

	Occupied bool
	Occupant core.Entity
}
