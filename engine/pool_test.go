package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juwon-cha/TycoonPlayableAD/component"
	"github.com/juwon-cha/TycoonPlayableAD/core"
)

func TestEntityPoolReusesReleased(t *testing.T) {
	w := newTestWorld(t, nil)
	pool := w.IndicatorPool

	a := pool.Acquire()
	b := pool.Acquire()
	assert.NotEqual(t, a, b)

	pool.Release(a)
	assert.True(t, pool.IsParked(a))
	assert.Equal(t, 1, pool.Available())
	assert.False(t, w.Indicators.HasEntity(a), "release detaches from stores")

	c := pool.Acquire()
	assert.Equal(t, a, c, "released entity is handed out again")
	assert.False(t, pool.IsParked(c))
	assert.Equal(t, 0, pool.Available())

	reg := w.Resources.Status
	assert.EqualValues(t, 2, reg.Counter("pool.indicator.allocated").Load())
	assert.EqualValues(t, 1, reg.Counter("pool.indicator.reused").Load())
	assert.EqualValues(t, 2, reg.Counter("pool.indicator.active").Load())
}

func TestEntityPoolAcquireResets(t *testing.T) {
	w := newTestWorld(t, nil)

	e := w.WorkerPool.Acquire()
	w.Workers.SetComponent(e, component.WorkerComponent{Working: true, Phase: component.PhaseWork, Desk: 42})
	w.WorkerPool.Release(e)

	again := w.WorkerPool.Acquire()
	require.Equal(t, e, again)
	worker, ok := w.Workers.GetComponent(again)
	require.True(t, ok)
	assert.False(t, worker.Working)
	assert.Equal(t, component.PhaseIdle, worker.Phase)
	assert.Equal(t, core.None, worker.Desk)
}

func TestEntityPoolReleaseIgnoresDuplicatesAndNone(t *testing.T) {
	w := newTestWorld(t, nil)
	pool := w.IndicatorPool

	e := pool.Acquire()
	pool.Release(e)
	pool.Release(e)
	pool.Release(core.None)

	assert.Equal(t, 1, pool.Available())
}
