package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/juwon-cha/TycoonPlayableAD/parameter"
	"github.com/juwon-cha/TycoonPlayableAD/status"
)

// ClockScheduler drives the game on a fixed tick
// Each tick measures elapsed game time on the pausable clock and hands it to the frame callback
// While paused the measured delta is zero, so queued actions still run but no timeline advances
type ClockScheduler struct {
	clock        *PausableClock
	tickInterval time.Duration
	onTick       func(dt time.Duration)

	lastGameTickTime time.Time

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	// Cached metric pointers
	statTicks     *atomic.Int64
	statFrameTime *status.AtomicFloat
}

// NewClockScheduler creates a scheduler calling onTick every tickInterval
func NewClockScheduler(
	clock *PausableClock,
	tickInterval time.Duration,
	reg *status.Registry,
	onTick func(dt time.Duration),
) *ClockScheduler {
	return &ClockScheduler{
		clock:            clock,
		tickInterval:     tickInterval,
		onTick:           onTick,
		lastGameTickTime: clock.Now(),
		stopChan:         make(chan struct{}),
		statTicks:        reg.Counter("engine.ticks"),
		statFrameTime:    reg.Gauge("engine.frame_ms"),
	}
}

// Run executes the loop on the calling goroutine until Stop
func (cs *ClockScheduler) Run() {
	if !cs.running.CompareAndSwap(false, true) {
		return
	}
	defer cs.running.Store(false)

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ticker.C:
			cs.processTick()
		}
	}
}

// Stop halts the scheduler loop, safe to call more than once and from any goroutine
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
	})
}

// IsRunning reports whether Run is active
func (cs *ClockScheduler) IsRunning() bool {
	return cs.running.Load()
}

// TickCount returns the number of processed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// processTick measures the game-time delta, clamps stalls and runs one frame
func (cs *ClockScheduler) processTick() time.Duration {
	start := time.Now()

	now := cs.clock.Now()
	dt := now.Sub(cs.lastGameTickTime)
	cs.lastGameTickTime = now

	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}

	cs.tickCount.Add(1)
	cs.statTicks.Add(1)

	if cs.onTick != nil {
		cs.onTick(dt)
	}

	cs.statFrameTime.Smooth(float64(time.Since(start).Microseconds())/1000, 0.1)
	return dt
}
