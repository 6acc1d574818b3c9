package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T, mutate func(*Settings)) *World {
	t.Helper()
	s := DefaultSettings()
	if mutate != nil {
		mutate(&s)
	}
	w, err := NewWorld(s)
	require.NoError(t, err)
	return w
}
