package system

import (
	"sync/atomic"
	"time"

	"github.com/juwon-cha/TycoonPlayableAD/engine"
	"github.com/juwon-cha/TycoonPlayableAD/event"
	"github.com/juwon-cha/TycoonPlayableAD/parameter"
)

// HoldSystem repeats the work action while the trigger is held
// The repeat interval shrinks linearly with hold time down to a floor
// Terminals send no key release, so a keyboard hold ends when pulses stop for KeyHoldTimeout
type HoldSystem struct {
	world *engine.World
	fire  func()

	initial      time.Duration
	floor        time.Duration
	acceleration float64
	keyTimeout   time.Duration

	held      bool
	byKey     bool
	holdTime  time.Duration
	sinceLast time.Duration
	sinceKey  time.Duration

	statFired *atomic.Int64
}

// NewHoldSystem creates a hold accelerator calling fire on every repeat
func NewHoldSystem(world *engine.World, fire func()) *HoldSystem {
	s := world.Resources.Settings
	return &HoldSystem{
		world:        world,
		fire:         fire,
		initial:      s.HoldInitialInterval,
		floor:        s.HoldMinInterval,
		acceleration: s.HoldAcceleration,
		keyTimeout:   s.KeyHoldTimeout,
		statFired:    world.Resources.Status.Counter("hold.fired"),
	}
}

// Name returns system's name
func (s *HoldSystem) Name() string {
	return "hold"
}

// Priority returns the system's priority
func (s *HoldSystem) Priority() int {
	return parameter.PriorityHold
}

// EventTypes returns the event types HoldSystem handles
func (s *HoldSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWorkKey,
		event.EventWorkHoldStart,
		event.EventWorkHoldEnd,
	}
}

// HandleEvent starts and ends holds
func (s *HoldSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventWorkHoldStart:
		if !s.held {
			s.start()
		}
		s.byKey = false
	case event.EventWorkHoldEnd:
		s.held = false
	case event.EventWorkKey:
		if !s.held {
			s.start()
			s.byKey = true
		}
		s.sinceKey = 0
	}
}

func (s *HoldSystem) start() {
	s.held = true
	s.holdTime = 0
	// Primed so the first update fires at once
	s.sinceLast = s.initial
	s.sinceKey = 0
}

// Held reports whether a hold is active
func (s *HoldSystem) Held() bool {
	return s.held
}

// Interval returns the current repeat interval for the accumulated hold time
func (s *HoldSystem) Interval() time.Duration {
	shrink := time.Duration(s.holdTime.Seconds() * s.acceleration * float64(time.Second))
	interval := s.initial - shrink
	if interval < s.floor {
		interval = s.floor
	}
	return interval
}

// Update fires the action whenever the time since the last repeat reaches the interval
// Failed attempts still consume the repeat
func (s *HoldSystem) Update() {
	if !s.held {
		return
	}
	dt := s.world.Resources.Time.DeltaTime

	if s.byKey {
		s.sinceKey += dt
		if s.sinceKey >= s.keyTimeout {
			s.held = false
			return
		}
	}

	s.holdTime += dt
	s.sinceLast += dt
	if s.sinceLast >= s.Interval() {
		s.sinceLast = 0
		s.statFired.Add(1)
		if s.fire != nil {
			s.fire()
		}
	}
}
