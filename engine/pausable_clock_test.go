package engine

import (
	"testing"
	"time"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPausableClockAdvancesWithSource(t *testing.T) {
	tp := NewMockTimeProvider(testEpoch)
	pc := NewPausableClock(tp)

	start := pc.Now()
	tp.Advance(3 * time.Second)

	if got := pc.Now().Sub(start); got != 3*time.Second {
		t.Errorf("elapsed = %v, want 3s", got)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	tp := NewMockTimeProvider(testEpoch)
	pc := NewPausableClock(tp)

	tp.Advance(time.Second)
	pc.Pause()
	frozen := pc.Now()

	tp.Advance(5 * time.Second)
	if !pc.Now().Equal(frozen) {
		t.Errorf("Now() moved while paused: %v -> %v", frozen, pc.Now())
	}
	if got := pc.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("TotalPauseDuration() = %v, want 5s", got)
	}

	pc.Resume()
	tp.Advance(2 * time.Second)
	if got := pc.Now().Sub(frozen); got != 2*time.Second {
		t.Errorf("elapsed after resume = %v, want 2s", got)
	}
}

func TestPausableClockToggle(t *testing.T) {
	pc := NewPausableClock(NewMockTimeProvider(testEpoch))

	if !pc.Toggle() || !pc.IsPaused() {
		t.Fatal("first Toggle() should pause")
	}
	if pc.Toggle() || pc.IsPaused() {
		t.Fatal("second Toggle() should resume")
	}

	// Redundant calls are no-ops
	pc.Resume()
	pc.Pause()
	pc.Pause()
	if !pc.IsPaused() {
		t.Error("clock should be paused")
	}
}
