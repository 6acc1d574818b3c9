package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juwon-cha/TycoonPlayableAD/engine"
	"github.com/juwon-cha/TycoonPlayableAD/event"
	"github.com/juwon-cha/TycoonPlayableAD/parameter"
)

func TestUpgradeSpendsAndRegrids(t *testing.T) {
	h := newHarness(t, func(s *engine.Settings) { s.StartingGold = 60 })
	w := h.world

	require.NoError(t, h.progression.Upgrade())

	assert.EqualValues(t, 0, w.Resources.Economy.Balance)
	assert.EqualValues(t, 120, w.Resources.Economy.Cost(engine.ActionUpgrade))
	assert.Equal(t, 1, w.PrimaryLevel())
	assert.Equal(t, []bool{false, false, false}, w.Occupancy(0))
}

func TestUpgradeInsufficientFundsIsIdempotent(t *testing.T) {
	h := newHarness(t, func(s *engine.Settings) { s.StartingGold = 59 })
	w := h.world
	desks := h.desks(0)

	assert.ErrorIs(t, h.progression.Upgrade(), engine.ErrInsufficientFunds)
	assert.EqualValues(t, 59, w.Resources.Economy.Balance)
	assert.EqualValues(t, parameter.UpgradeCost, w.Resources.Economy.Cost(engine.ActionUpgrade))
	assert.Equal(t, 0, w.PrimaryLevel())
	assert.Equal(t, desks, h.desks(0), "no regrid")

	w.Tick(0)
	assert.Zero(t, h.events.count(event.EventDeskGridChanged))
	assert.Zero(t, h.events.count(event.EventGoldChanged))
}

func TestUpgradeCostGrowthAndMaxLevel(t *testing.T) {
	h := newHarness(t, func(s *engine.Settings) { s.StartingGold = 1_000_000 })
	w := h.world
	eco := w.Resources.Economy

	for n := 1; n <= parameter.MaxLevel; n++ {
		require.NoError(t, h.progression.Upgrade())
		assert.EqualValues(t, parameter.UpgradeCost<<n, eco.Cost(engine.ActionUpgrade))
		assert.Len(t, h.desks(0), parameter.DeskCount(n))
	}

	balance := eco.Balance
	assert.ErrorIs(t, h.progression.Upgrade(), engine.ErrMaxLevel)
	assert.Equal(t, balance, eco.Balance)
	assert.EqualValues(t, parameter.UpgradeCost<<parameter.MaxLevel, eco.Cost(engine.ActionUpgrade))
}

func TestUpgradeChecksFundsBeforeMaxLevel(t *testing.T) {
	h := newHarness(t, func(s *engine.Settings) { s.StartingGold = 0 })
	office, _, _ := h.world.Office(0)
	require.True(t, h.world.SetLevel(office, parameter.MaxLevel))

	assert.ErrorIs(t, h.progression.Upgrade(), engine.ErrInsufficientFunds)
}

func TestUpgradeLevelsAllUnlockedOffices(t *testing.T) {
	h := newHarness(t, func(s *engine.Settings) { s.StartingGold = 1_000_000 })
	w := h.world

	require.NoError(t, h.progression.Expand())
	require.NoError(t, h.progression.Upgrade())

	for i := 0; i < 2; i++ {
		_, oc, _ := w.Office(i)
		assert.Equal(t, 1, oc.Level, "office %d", i)
		assert.Len(t, oc.Desks, 3)
	}
	_, locked, _ := w.Office(2)
	assert.Equal(t, 0, locked.Level)
	assert.Empty(t, locked.Desks)
}

func TestExpandUnlocksAtPrimaryLevel(t *testing.T) {
	h := newHarness(t, nil)
	w := h.world
	office, _, _ := w.Office(0)
	require.True(t, w.SetLevel(office, 2))
	w.Resources.Economy.Balance = 100
	w.Tick(0)
	h.events.reset()

	require.NoError(t, h.progression.Expand())

	assert.EqualValues(t, 0, w.Resources.Economy.Balance)
	assert.EqualValues(t, 200, w.Resources.Economy.Cost(engine.ActionExpand))
	assert.Equal(t, 2, w.UnlockedCount())

	_, oc, _ := w.Office(1)
	assert.True(t, oc.Unlocked)
	assert.Equal(t, 2, oc.Level)
	assert.Len(t, oc.Desks, 6)
	assert.Equal(t, []bool{false, false, false, false, false, false}, w.Occupancy(1))

	w.Tick(0)
	assert.Equal(t, 1, h.events.count(event.EventZoomOut))
	assert.Equal(t, 1, h.events.count(event.EventOfficeUnlocked))
	assert.True(t, w.Resources.Progress.ZoomedOut)
}

func TestExpandZoomOutOnlyOnce(t *testing.T) {
	h := newHarness(t, func(s *engine.Settings) { s.StartingGold = 1_000_000 })
	w := h.world
	eco := w.Resources.Economy

	for n := 1; n < parameter.MaxOfficeCount; n++ {
		require.NoError(t, h.progression.Expand())
		assert.EqualValues(t, parameter.ExpandCost<<n, eco.Cost(engine.ActionExpand))
	}
	assert.Equal(t, parameter.MaxOfficeCount, w.UnlockedCount())

	balance := eco.Balance
	assert.ErrorIs(t, h.progression.Expand(), engine.ErrMaxExpansion)
	assert.Equal(t, balance, eco.Balance)

	w.Tick(0)
	assert.Equal(t, 1, h.events.count(event.EventZoomOut))
	assert.Equal(t, parameter.MaxOfficeCount-1, h.events.count(event.EventOfficeUnlocked))
}

func TestExpandChecksMaxCountBeforeFunds(t *testing.T) {
	h := newHarness(t, func(s *engine.Settings) {
		s.StartingGold = 0
		s.MaxOffices = 1
	})
	assert.ErrorIs(t, h.progression.Expand(), engine.ErrMaxExpansion)
}

func TestExpandInsufficientFunds(t *testing.T) {
	h := newHarness(t, func(s *engine.Settings) { s.StartingGold = 99 })
	assert.ErrorIs(t, h.progression.Expand(), engine.ErrInsufficientFunds)
	assert.Equal(t, 1, h.world.UnlockedCount())
	assert.EqualValues(t, 99, h.world.Resources.Economy.Balance)
}

func TestProgressionRequestsFromEvents(t *testing.T) {
	h := newHarness(t, func(s *engine.Settings) { s.StartingGold = 160 })
	h.world.Emit(event.EventUpgradeRequest, nil)
	h.world.Emit(event.EventExpandRequest, nil)
	h.world.Tick(0)

	assert.Equal(t, 1, h.world.PrimaryLevel())
	assert.Equal(t, 2, h.world.UnlockedCount())
	assert.EqualValues(t, 0, h.world.Resources.Economy.Balance)
}

func TestDeskCountMonotonic(t *testing.T) {
	prev := 0
	for level, want := range []int{1, 3, 6, 9} {
		got := parameter.DeskCount(level)
		assert.Equal(t, want, got)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}
