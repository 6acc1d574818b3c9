package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juwon-cha/TycoonPlayableAD/core"
	"github.com/juwon-cha/TycoonPlayableAD/engine"
)

func TestMotionSystemTweens(t *testing.T) {
	w, err := engine.NewWorld(engine.DefaultSettings())
	require.NoError(t, err)
	w.AddSystem(NewMotionSystem(w))

	e := w.CreateEntity()
	w.Place(e, core.Vec2{})
	w.MoveTo(e, core.Vec2{X: 100}, time.Second, core.EaseLinear)

	w.Tick(250 * time.Millisecond)
	pos, _ := w.Positions.GetComponent(e)
	assert.InDelta(t, 25, pos.X, 1e-9)
	assert.True(t, w.Motions.HasEntity(e))

	w.Tick(time.Second)
	pos, _ = w.Positions.GetComponent(e)
	assert.Equal(t, core.Vec2{X: 100}, pos.Vec2)
	assert.False(t, w.Motions.HasEntity(e), "tween dropped on arrival")
}
