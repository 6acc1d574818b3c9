package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juwon-cha/TycoonPlayableAD/engine"
	"github.com/juwon-cha/TycoonPlayableAD/event"
)

func newHoldOnly(t *testing.T) (*engine.World, *HoldSystem, *int) {
	t.Helper()
	w, err := engine.NewWorld(engine.DefaultSettings())
	require.NoError(t, err)

	fired := 0
	hold := NewHoldSystem(w, func() { fired++ })
	w.AddSystem(hold)
	return w, hold, &fired
}

func TestHoldFiresOnFirstUpdate(t *testing.T) {
	w, hold, fired := newHoldOnly(t)

	w.Emit(event.EventWorkHoldStart, nil)
	w.Tick(16 * time.Millisecond)

	assert.True(t, hold.Held())
	assert.Equal(t, 1, *fired)
}

func TestHoldIntervalShrinksToFloor(t *testing.T) {
	w, hold, _ := newHoldOnly(t)

	w.Emit(event.EventWorkHoldStart, nil)
	w.Tick(0)
	assert.Equal(t, 500*time.Millisecond, hold.Interval())

	w.Tick(time.Second)
	assert.Equal(t, 300*time.Millisecond, hold.Interval())

	w.Tick(5 * time.Second)
	assert.Equal(t, 50*time.Millisecond, hold.Interval())
}

func TestHoldAccelerates(t *testing.T) {
	w, _, fired := newHoldOnly(t)
	w.Emit(event.EventWorkHoldStart, nil)

	tick := func(d time.Duration) int {
		before := *fired
		for elapsed := time.Duration(0); elapsed < d; elapsed += 10 * time.Millisecond {
			w.Tick(10 * time.Millisecond)
		}
		return *fired - before
	}

	first := tick(time.Second)
	tick(time.Second)
	third := tick(time.Second)

	assert.InDelta(t, 3, first, 1)
	assert.InDelta(t, 19, third, 1)
}

func TestHoldEndStops(t *testing.T) {
	w, hold, fired := newHoldOnly(t)

	w.Emit(event.EventWorkHoldStart, nil)
	w.Tick(10 * time.Millisecond)
	w.Emit(event.EventWorkHoldEnd, nil)
	w.Tick(10 * time.Millisecond)
	w.Tick(time.Second)

	assert.False(t, hold.Held())
	assert.Equal(t, 1, *fired)
}

func TestKeyHoldTimesOut(t *testing.T) {
	w, hold, fired := newHoldOnly(t)

	w.Emit(event.EventWorkKey, nil)
	w.Tick(16 * time.Millisecond)
	require.True(t, hold.Held())
	assert.Equal(t, 1, *fired)

	// Repeated pulses keep the hold alive
	for i := 0; i < 10; i++ {
		w.Emit(event.EventWorkKey, nil)
		w.Tick(100 * time.Millisecond)
	}
	assert.True(t, hold.Held())
	assert.Greater(t, *fired, 1)

	w.Tick(300 * time.Millisecond)
	assert.False(t, hold.Held())
}

func TestMouseHoldDoesNotTimeOut(t *testing.T) {
	w, hold, _ := newHoldOnly(t)

	w.Emit(event.EventWorkHoldStart, nil)
	w.Tick(2 * time.Second)
	assert.True(t, hold.Held())
}

func TestHoldDrivesWork(t *testing.T) {
	h := newHarness(t, nil)
	h.world.Emit(event.EventWorkHoldStart, nil)
	h.world.Tick(16 * time.Millisecond)

	assert.EqualValues(t, 19, h.world.Resources.Economy.Balance)
	assert.EqualValues(t, 1, h.world.Resources.Status.Counter("hold.fired").Load())
}
