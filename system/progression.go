package system

import (
	"sync/atomic"

	"github.com/juwon-cha/TycoonPlayableAD/engine"
	"github.com/juwon-cha/TycoonPlayableAD/event"
	"github.com/juwon-cha/TycoonPlayableAD/parameter"
)

// ProgressionSystem handles office upgrades and expansion
// All unlocked offices level up together; a newly unlocked office starts at the primary level
type ProgressionSystem struct {
	world *engine.World

	statUpgrades *atomic.Int64
	statExpands  *atomic.Int64
	statSpent    *atomic.Int64
}

// NewProgressionSystem creates the progression system
func NewProgressionSystem(world *engine.World) *ProgressionSystem {
	reg := world.Resources.Status
	return &ProgressionSystem{
		world:        world,
		statUpgrades: reg.Counter("progress.upgrades"),
		statExpands:  reg.Counter("progress.expands"),
		statSpent:    reg.Counter("gold.spent"),
	}
}

// Name returns system's name
func (s *ProgressionSystem) Name() string {
	return "progression"
}

// Priority returns the system's priority
func (s *ProgressionSystem) Priority() int {
	return parameter.PriorityWork
}

// EventTypes returns the event types ProgressionSystem handles
func (s *ProgressionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventUpgradeRequest,
		event.EventExpandRequest,
	}
}

// HandleEvent processes upgrade and expand requests, failures are silent
func (s *ProgressionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventUpgradeRequest:
		_ = s.Upgrade()
	case event.EventExpandRequest:
		_ = s.Expand()
	}
}

// Update is a no-op, progression is driven by requests only
func (s *ProgressionSystem) Update() {}

// Upgrade raises every unlocked office below max level by one and regrids it
// The primary office level gates the action
func (s *ProgressionSystem) Upgrade() error {
	w := s.world
	eco := w.Resources.Economy

	if !eco.CanAfford(engine.ActionUpgrade) {
		return engine.ErrInsufficientFunds
	}
	if w.PrimaryLevel() >= parameter.MaxLevel {
		return engine.ErrMaxLevel
	}

	cost, err := eco.Charge(engine.ActionUpgrade)
	if err != nil {
		return err
	}

	for i := range w.OfficeOrder {
		office, oc, ok := w.Office(i)
		if !ok || !oc.Unlocked || oc.Level >= parameter.MaxLevel {
			continue
		}
		w.SetLevel(office, oc.Level+1)
	}

	s.statUpgrades.Add(1)
	s.statSpent.Add(cost)
	w.EmitGold(-cost)
	w.EmitCosts()
	return nil
}

// Expand unlocks the next office at the primary office's current level
// Reaching two unlocked offices triggers the one-time zoom out
func (s *ProgressionSystem) Expand() error {
	w := s.world
	eco := w.Resources.Economy
	progress := w.Resources.Progress

	if progress.Unlocked >= progress.MaxOffices {
		return engine.ErrMaxExpansion
	}
	if !eco.CanAfford(engine.ActionExpand) {
		return engine.ErrInsufficientFunds
	}

	next := -1
	for i := range w.OfficeOrder {
		if _, oc, ok := w.Office(i); ok && !oc.Unlocked {
			next = i
			break
		}
	}
	if next < 0 {
		return engine.ErrMaxExpansion
	}

	cost, err := eco.Charge(engine.ActionExpand)
	if err != nil {
		return err
	}

	level := w.PrimaryLevel()
	w.UnlockOffice(next, level)
	office, _, _ := w.Office(next)

	s.statExpands.Add(1)
	s.statSpent.Add(cost)
	w.EmitGold(-cost)
	w.EmitCosts()
	w.Emit(event.EventOfficeUnlocked, event.OfficeUnlockedPayload{
		Office:   office,
		Index:    next,
		Level:    level,
		Unlocked: progress.Unlocked,
	})

	if progress.Unlocked == 2 && !progress.ZoomedOut {
		progress.ZoomedOut = true
		w.Emit(event.EventZoomOut, nil)
	}
	return nil
}
