package component

import "github.com/juwon-cha/TycoonPlayableAD/core"

// OfficeComponent is a progression-gated location holding a desk grid sized by Level
type OfficeComponent struct {
	Index    int
	Unlocked bool
	Level    int
	Origin   core.Vec2

	// Desks in scan order, rebuilt in full on every level change
	Desks []core.Entity
}
