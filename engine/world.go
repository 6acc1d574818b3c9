package engine

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/juwon-cha/TycoonPlayableAD/component"
	"github.com/juwon-cha/TycoonPlayableAD/core"
	"github.com/juwon-cha/TycoonPlayableAD/event"
	"github.com/juwon-cha/TycoonPlayableAD/parameter"
	"github.com/juwon-cha/TycoonPlayableAD/status"
)

// World contains all entities and their components using typed stores
// It is the single owned context of the simulation; nothing in the core is global
// All mutation happens on the game loop goroutine, other goroutines only push events
type World struct {
	nextEntityID core.Entity

	Workers    *Store[component.WorkerComponent]
	Desks      *Store[component.DeskComponent]
	Offices    *Store[component.OfficeComponent]
	Indicators *Store[component.IndicatorComponent]
	Positions  *Store[component.PositionComponent]
	Motions    *Store[component.MotionComponent]
	allStores  []AnyStore

	Resources Resource

	WorkerPool    *EntityPool[component.WorkerComponent]
	IndicatorPool *EntityPool[component.IndicatorComponent]

	// OfficeOrder lists office entities by index, locked ones included
	OfficeOrder []core.Entity

	router  *event.Router
	systems []System

	statDispatched *atomic.Int64
	statDropped    *atomic.Int64
}

// NewWorld builds the starting state: primary office unlocked at level 0, full waiting line
func NewWorld(settings Settings) (*World, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	queue := event.NewEventQueue()
	reg := status.NewRegistry()

	w := &World{
		nextEntityID: 1,
		Workers:      NewStore[component.WorkerComponent](),
		Desks:        NewStore[component.DeskComponent](),
		Offices:      NewStore[component.OfficeComponent](),
		Indicators:   NewStore[component.IndicatorComponent](),
		Positions:    NewStore[component.PositionComponent](),
		Motions:      NewStore[component.MotionComponent](),
		Resources: Resource{
			Time:     &TimeResource{},
			Settings: settings,
			Economy:  NewEconomy(settings),
			Queue:    NewWorkQueue(settings.QueueSize),
			Progress: &ProgressResource{MaxOffices: settings.MaxOffices},
			Events:   queue,
			Status:   reg,
		},
		router:         event.NewRouter(queue),
		statDispatched: reg.Counter("engine.events"),
		statDropped:    reg.Counter("engine.events_dropped"),
	}
	w.allStores = []AnyStore{w.Workers, w.Desks, w.Offices, w.Indicators, w.Positions, w.Motions}

	w.WorkerPool = NewEntityPool(w, w.Workers, "worker", func() component.WorkerComponent {
		return component.WorkerComponent{}
	})
	w.IndicatorPool = NewEntityPool(w, w.Indicators, "indicator", func() component.IndicatorComponent {
		return component.IndicatorComponent{}
	})

	for i := 0; i < settings.MaxOffices; i++ {
		e := w.CreateEntity()
		w.Offices.SetComponent(e, component.OfficeComponent{
			Index:  i,
			Origin: parameter.OfficeOrigins[i],
		})
		w.OfficeOrder = append(w.OfficeOrder, e)
	}

	w.UnlockOffice(parameter.PrimaryOfficeIndex, 0)
	w.RefillQueue(false)
	w.EmitGold(0)
	w.EmitCosts()

	return w, nil
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.detach(e)
}

func (w *World) detach(e core.Entity) {
	for _, s := range w.allStores {
		s.RemoveEntity(e)
	}
}

// EntityCount returns the number of entities holding at least a position
func (w *World) EntityCount() int {
	return w.Positions.CountEntities()
}

// AddSystem adds a system sorted by priority and routes its events when it is a handler
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})

	if h, ok := system.(event.Handler); ok {
		w.router.Register(h)
	}
}

// RegisterHandler routes events to a non-system consumer such as the renderer
func (w *World) RegisterHandler(h event.Handler) {
	w.router.Register(h)
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Emit queues an event stamped with the current frame
func (w *World) Emit(t event.EventType, payload any) {
	w.Resources.Events.Emit(t, payload, w.Resources.Time.FrameNumber)
}

// EmitGold publishes the balance after a change of delta
func (w *World) EmitGold(delta int64) {
	w.Emit(event.EventGoldChanged, event.GoldChangedPayload{
		Balance: w.Resources.Economy.Balance,
		Delta:   delta,
	})
}

// EmitCosts publishes the current action prices
func (w *World) EmitCosts() {
	eco := w.Resources.Economy
	w.Emit(event.EventCostsChanged, event.CostsChangedPayload{
		Work:    eco.Cost(ActionWork),
		Upgrade: eco.Cost(ActionUpgrade),
		Expand:  eco.Cost(ActionExpand),
	})
}

// Tick advances the simulation by dt
// Pending events are routed before and after the systems run
func (w *World) Tick(dt time.Duration) {
	w.Resources.Time.Advance(dt)
	w.DispatchEvents()
	for _, s := range w.systems {
		s.Update()
	}
	w.DispatchEvents()
}

// DispatchEvents drains the event queue until it settles or the iteration bound is hit
// Events emitted by handlers are delivered in the same call
func (w *World) DispatchEvents() {
	w.statDropped.Store(int64(w.Resources.Events.Dropped()))
	for i := 0; i < parameter.EventLoopIterations; i++ {
		n := w.router.DispatchAll()
		if n == 0 {
			return
		}
		w.statDispatched.Add(int64(n))
	}
}
