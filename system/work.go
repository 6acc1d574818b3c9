package system

import (
	"errors"
	"slices"
	"sync/atomic"
	"time"

	"github.com/juwon-cha/TycoonPlayableAD/component"
	"github.com/juwon-cha/TycoonPlayableAD/core"
	"github.com/juwon-cha/TycoonPlayableAD/engine"
	"github.com/juwon-cha/TycoonPlayableAD/event"
	"github.com/juwon-cha/TycoonPlayableAD/parameter"
)

// WorkSystem assigns queued workers to desks and runs their work cycles
// Cycle: travel -> work -> payout -> return -> release, each advanced by the tick delta
type WorkSystem struct {
	world *engine.World

	// Cached metric pointers
	statStarted   *atomic.Int64
	statCompleted *atomic.Int64
	statNoFunds   *atomic.Int64
	statNoQueue   *atomic.Int64
	statNoDesk    *atomic.Int64
	statEarned    *atomic.Int64
	statSpent     *atomic.Int64
	statActive    *atomic.Int64
}

// NewWorkSystem creates the work cycle system
func NewWorkSystem(world *engine.World) *WorkSystem {
	reg := world.Resources.Status
	return &WorkSystem{
		world:         world,
		statStarted:   reg.Counter("work.started"),
		statCompleted: reg.Counter("work.completed"),
		statNoFunds:   reg.Counter("work.rejected.funds"),
		statNoQueue:   reg.Counter("work.rejected.queue"),
		statNoDesk:    reg.Counter("work.rejected.desk"),
		statEarned:    reg.Counter("gold.earned"),
		statSpent:     reg.Counter("gold.spent"),
		statActive:    reg.Counter("work.active"),
	}
}

// Name returns system's name
func (s *WorkSystem) Name() string {
	return "work"
}

// Priority returns the system's priority
func (s *WorkSystem) Priority() int {
	return parameter.PriorityWork
}

// EventTypes returns the event types WorkSystem handles
func (s *WorkSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWorkRequest,
	}
}

// HandleEvent processes work requests
func (s *WorkSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventWorkRequest {
		s.Attempt()
	}
}

// Attempt runs AssignWork and surfaces a missing desk to the view
// Funds and queue failures stay silent
func (s *WorkSystem) Attempt() error {
	err := s.AssignWork()
	if errors.Is(err, engine.ErrNoDeskAvailable) {
		s.world.Emit(event.EventNoDeskAvailable, nil)
	}
	return err
}

// AssignWork sends the front worker of the line to the first free desk
// Checks run in order funds, queue, desk; a failed check leaves the world untouched
func (s *WorkSystem) AssignWork() error {
	w := s.world
	eco := w.Resources.Economy

	if !eco.CanAfford(engine.ActionWork) {
		s.statNoFunds.Add(1)
		return engine.ErrInsufficientFunds
	}
	if w.Resources.Queue.Len() == 0 {
		s.statNoQueue.Add(1)
		return engine.ErrQueueEmpty
	}
	desk, ok := w.FirstFreeDesk()
	if !ok {
		s.statNoDesk.Add(1)
		return engine.ErrNoDeskAvailable
	}

	cost, err := eco.Charge(engine.ActionWork)
	if err != nil {
		return err
	}
	worker, _ := w.Resources.Queue.TryDequeueFront()
	w.RefillQueue(true)

	// Occupancy is claimed at assignment, the walk happens while the desk is held
	w.ClaimDesk(desk, worker)
	travel := w.Resources.Settings.TravelDuration
	w.Workers.SetComponent(worker, component.WorkerComponent{
		Working:   true,
		Phase:     component.PhaseTravel,
		Remaining: travel,
		Desk:      desk,
	})
	if pos, ok := w.DeskPosition(desk); ok {
		w.MoveTo(worker, pos, travel, core.EaseCubicOut)
	}

	s.statStarted.Add(1)
	s.statActive.Add(1)
	s.statSpent.Add(cost)
	w.EmitGold(-cost)
	w.EmitCosts()
	return nil
}

// Update advances every working cycle by the tick delta in ascending entity order
func (s *WorkSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime

	entities := s.world.Workers.GetAllEntities()
	slices.Sort(entities)

	for _, e := range entities {
		worker, ok := s.world.Workers.GetComponent(e)
		if !ok || !worker.Working {
			continue
		}
		s.advance(e, worker, dt)
	}
}

// advance consumes budget phase by phase, overshoot carries into the next phase
func (s *WorkSystem) advance(e core.Entity, worker component.WorkerComponent, budget time.Duration) {
	for budget >= worker.Remaining {
		budget -= worker.Remaining

		switch worker.Phase {
		case component.PhaseTravel:
			s.beginWork(e, &worker)
		case component.PhaseWork:
			s.payout(e, &worker)
		case component.PhaseReturn:
			s.release(e, worker)
			return
		default:
			return
		}
	}

	worker.Remaining -= budget
	s.world.Workers.SetComponent(e, worker)

	if worker.Phase == component.PhaseWork {
		s.updateIndicator(worker)
	}
}

// beginWork shows the progress indicator above the desk
func (s *WorkSystem) beginWork(e core.Entity, worker *component.WorkerComponent) {
	w := s.world

	ind := w.IndicatorPool.Acquire()
	w.Indicators.SetComponent(ind, component.IndicatorComponent{
		Desk:    worker.Desk,
		Visible: true,
	})

	anchor, ok := w.DeskPosition(worker.Desk)
	if !ok {
		// Desk was regridded away during travel, stay where the worker stands
		pos, _ := w.Positions.GetComponent(e)
		anchor = pos.Vec2
	}
	w.Place(ind, anchor.Add(core.Vec2{Y: parameter.IndicatorOffsetY}))

	worker.Phase = component.PhaseWork
	worker.Remaining = w.Resources.Settings.WorkDuration
	worker.Indicator = ind
}

// payout credits the reward, drops the indicator and starts the walk out
func (s *WorkSystem) payout(e core.Entity, worker *component.WorkerComponent) {
	w := s.world
	reward := w.Resources.Settings.WorkReward

	w.Resources.Economy.Credit(reward)
	w.IndicatorPool.Release(worker.Indicator)
	worker.Indicator = core.None

	returnDur := w.Resources.Settings.ReturnDuration
	worker.Phase = component.PhaseReturn
	worker.Remaining = returnDur
	w.MoveTo(e, parameter.ExitPoint, returnDur, core.EaseCubicIn)

	s.statCompleted.Add(1)
	s.statEarned.Add(reward)
	w.EmitGold(reward)
	w.Emit(event.EventWorkCompleted, event.WorkCompletedPayload{
		Worker: e,
		Desk:   worker.Desk,
		Reward: reward,
	})
}

// release frees the desk if this worker still holds it and returns the worker to the pool
func (s *WorkSystem) release(e core.Entity, worker component.WorkerComponent) {
	s.world.FreeDesk(worker.Desk, e)
	s.world.WorkerPool.Release(e)
	s.statActive.Add(-1)
}

func (s *WorkSystem) updateIndicator(worker component.WorkerComponent) {
	ind, ok := s.world.Indicators.GetComponent(worker.Indicator)
	if !ok {
		return
	}
	total := s.world.Resources.Settings.WorkDuration
	ind.Progress = 1
	if total > 0 {
		ind.Progress = 1 - float64(worker.Remaining)/float64(total)
	}
	s.world.Indicators.SetComponent(worker.Indicator, ind)
}
