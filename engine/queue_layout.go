package engine

import (
	"time"

	"github.com/juwon-cha/TycoonPlayableAD/component"
	"github.com/juwon-cha/TycoonPlayableAD/core"
	"github.com/juwon-cha/TycoonPlayableAD/event"
	"github.com/juwon-cha/TycoonPlayableAD/parameter"
)

// SlotPosition returns the world position of waiting line slot i
func SlotPosition(i int) core.Vec2 {
	return parameter.QueueOrigin.Add(core.Vec2{Y: float64(i) * parameter.QueueSpacing})
}

// RefillQueue tops the waiting line up to its target
// When animated, remaining workers shift one slot forward and newcomers slide in from behind the back
func (w *World) RefillQueue(animated bool) {
	q := w.Resources.Queue
	shift := w.Resources.Settings.QueueShiftDuration

	for i := 0; i < q.Len(); i++ {
		if animated {
			w.MoveTo(q.At(i), SlotPosition(i), shift, core.EaseCubicOut)
		} else {
			w.Place(q.At(i), SlotPosition(i))
		}
	}

	start := q.Len()
	added := q.Refill(w.WorkerPool.Acquire)
	for k, e := range added {
		slot := start + k
		worker, _ := w.Workers.GetComponent(e)
		worker.Phase = component.PhaseQueued
		w.Workers.SetComponent(e, worker)

		if animated {
			w.Place(e, SlotPosition(slot+1))
			w.MoveTo(e, SlotPosition(slot), shift, core.EaseCubicOut)
		} else {
			w.Place(e, SlotPosition(slot))
		}
	}

	w.Emit(event.EventQueueChanged, event.QueueChangedPayload{Length: q.Len(), Added: len(added)})
}

// Place sets a position instantly and cancels any running tween
func (w *World) Place(e core.Entity, at core.Vec2) {
	w.Positions.SetComponent(e, component.PositionComponent{Vec2: at})
	w.Motions.RemoveEntity(e)
}

// MoveTo tweens e from its current position to target over d
// A non-positive duration places the entity immediately
func (w *World) MoveTo(e core.Entity, to core.Vec2, d time.Duration, ease core.Easing) {
	if d <= 0 {
		w.Place(e, to)
		return
	}
	from, ok := w.Positions.GetComponent(e)
	if !ok {
		from.Vec2 = to
		w.Positions.SetComponent(e, from)
	}
	w.Motions.SetComponent(e, component.MotionComponent{
		From:     from.Vec2,
		To:       to,
		Duration: d,
		Ease:     ease,
	})
}
