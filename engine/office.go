package engine

import (
	"github.com/juwon-cha/TycoonPlayableAD/component"
	"github.com/juwon-cha/TycoonPlayableAD/core"
	"github.com/juwon-cha/TycoonPlayableAD/event"
	"github.com/juwon-cha/TycoonPlayableAD/parameter"
)

// Office returns the office at index i
func (w *World) Office(i int) (core.Entity, component.OfficeComponent, bool) {
	if i < 0 || i >= len(w.OfficeOrder) {
		return core.None, component.OfficeComponent{}, false
	}
	e := w.OfficeOrder[i]
	oc, ok := w.Offices.GetComponent(e)
	return e, oc, ok
}

// PrimaryLevel returns the level of the primary office, which gates upgrades
func (w *World) PrimaryLevel() int {
	_, oc, _ := w.Office(parameter.PrimaryOfficeIndex)
	return oc.Level
}

// UnlockedCount returns the number of unlocked offices
func (w *World) UnlockedCount() int {
	return w.Resources.Progress.Unlocked
}

// UnlockOffice unlocks office i at level and builds its desks
func (w *World) UnlockOffice(i, level int) bool {
	e, oc, ok := w.Office(i)
	if !ok || oc.Unlocked {
		return false
	}
	oc.Unlocked = true
	oc.Level = level
	w.Offices.SetComponent(e, oc)
	w.Resources.Progress.Unlocked++
	w.Regrid(e)
	return true
}

// SetLevel raises an office level and rebuilds its desks
// Levels only grow; lower or out of range values are rejected
func (w *World) SetLevel(office core.Entity, level int) bool {
	oc, ok := w.Offices.GetComponent(office)
	if !ok || level <= oc.Level || level > parameter.MaxLevel {
		return false
	}
	oc.Level = level
	w.Offices.SetComponent(office, oc)
	w.Regrid(office)
	return true
}

// Regrid destroys the desks of an office and recreates them from its level
// Every recreated desk starts unoccupied; workers still holding an old desk keep a dangling reference
func (w *World) Regrid(office core.Entity) {
	oc, ok := w.Offices.GetComponent(office)
	if !ok {
		return
	}

	for _, d := range oc.Desks {
		w.DestroyEntity(d)
	}

	offsets := parameter.DeskOffsets(oc.Level)
	oc.Desks = make([]core.Entity, 0, len(offsets))
	for slot, off := range offsets {
		d := w.CreateEntity()
		w.Desks.SetComponent(d, component.DeskComponent{
			Office: office,
			Slot:   slot,
			Offset: off,
		})
		w.Positions.SetComponent(d, component.PositionComponent{Vec2: oc.Origin.Add(off)})
		oc.Desks = append(oc.Desks, d)
	}
	w.Offices.SetComponent(office, oc)

	w.Emit(event.EventDeskGridChanged, event.DeskGridChangedPayload{
		Office: office,
		Index:  oc.Index,
		Level:  oc.Level,
		Desks:  len(oc.Desks),
	})
}

// FirstFreeDesk scans unlocked offices by index, then desks in grid order
func (w *World) FirstFreeDesk() (core.Entity, bool) {
	for _, o := range w.OfficeOrder {
		oc, ok := w.Offices.GetComponent(o)
		if !ok || !oc.Unlocked {
			continue
		}
		for _, d := range oc.Desks {
			dc, ok := w.Desks.GetComponent(d)
			if ok && !dc.Occupied {
				return d, true
			}
		}
	}
	return core.None, false
}

// ClaimDesk marks desk as held by worker
func (w *World) ClaimDesk(desk, worker core.Entity) bool {
	dc, ok := w.Desks.GetComponent(desk)
	if !ok || dc.Occupied {
		return false
	}
	dc.Occupied = true
	dc.Occupant = worker
	w.Desks.SetComponent(desk, dc)
	w.Emit(event.EventDeskOccupancyChanged, event.DeskOccupancyPayload{Desk: desk, Worker: worker, Occupied: true})
	return true
}

// FreeDesk releases desk if it still exists and is held by worker
func (w *World) FreeDesk(desk, worker core.Entity) bool {
	dc, ok := w.Desks.GetComponent(desk)
	if !ok || !dc.Occupied || dc.Occupant != worker {
		return false
	}
	dc.Occupied = false
	dc.Occupant = core.None
	w.Desks.SetComponent(desk, dc)
	w.Emit(event.EventDeskOccupancyChanged, event.DeskOccupancyPayload{Desk: desk, Worker: worker, Occupied: false})
	return true
}

// DeskPosition returns the world position of a desk
func (w *World) DeskPosition(desk core.Entity) (core.Vec2, bool) {
	pos, ok := w.Positions.GetComponent(desk)
	return pos.Vec2, ok
}

// Occupancy returns the occupied flags of office i in desk order
func (w *World) Occupancy(i int) []bool {
	_, oc, ok := w.Office(i)
	if !ok {
		return nil
	}
	out := make([]bool, len(oc.Desks))
	for j, d := range oc.Desks {
		dc, _ := w.Desks.GetComponent(d)
		out[j] = dc.Occupied
	}
	return out
}

// TotalDesks returns the desk count across unlocked offices
func (w *World) TotalDesks() int {
	n := 0
	for _, o := range w.OfficeOrder {
		if oc, ok := w.Offices.GetComponent(o); ok && oc.Unlocked {
			n += len(oc.Desks)
		}
	}
	return n
}
