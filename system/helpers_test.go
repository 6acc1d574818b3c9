package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/juwon-cha/TycoonPlayableAD/core"
	"github.com/juwon-cha/TycoonPlayableAD/engine"
	"github.com/juwon-cha/TycoonPlayableAD/event"
)

type harness struct {
	world       *engine.World
	work        *WorkSystem
	progression *ProgressionSystem
	hold        *HoldSystem
	events      *eventRecorder
}

func newHarness(t *testing.T, mutate func(*engine.Settings)) *harness {
	t.Helper()
	s := engine.DefaultSettings()
	if mutate != nil {
		mutate(&s)
	}
	w, err := engine.NewWorld(s)
	require.NoError(t, err)

	h := &harness{
		world:       w,
		work:        NewWorkSystem(w),
		progression: NewProgressionSystem(w),
		events:      &eventRecorder{},
	}
	h.hold = NewHoldSystem(w, func() { _ = h.work.Attempt() })

	w.AddSystem(h.hold)
	w.AddSystem(h.work)
	w.AddSystem(h.progression)
	w.AddSystem(NewMotionSystem(w))
	w.RegisterHandler(h.events)

	// Drain startup notifications
	w.Tick(0)
	h.events.reset()
	return h
}

// step advances the world in fixed slices
func (h *harness) step(total, slice time.Duration) {
	for total > 0 {
		d := min(slice, total)
		h.world.Tick(d)
		total -= d
	}
}

func (h *harness) cycle() time.Duration {
	s := h.world.Resources.Settings
	return s.TravelDuration + s.WorkDuration + s.ReturnDuration
}

func (h *harness) desks(office int) []core.Entity {
	_, oc, _ := h.world.Office(office)
	return oc.Desks
}

type eventRecorder struct {
	seen []event.GameEvent
}

func (r *eventRecorder) HandleEvent(ev event.GameEvent) { r.seen = append(r.seen, ev) }

func (r *eventRecorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGoldChanged,
		event.EventCostsChanged,
		event.EventDeskGridChanged,
		event.EventDeskOccupancyChanged,
		event.EventQueueChanged,
		event.EventNoDeskAvailable,
		event.EventOfficeUnlocked,
		event.EventZoomOut,
		event.EventWorkCompleted,
	}
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.seen {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *eventRecorder) reset() {
	r.seen = r.seen[:0]
}
