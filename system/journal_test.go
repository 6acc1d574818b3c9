package system

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juwon-cha/TycoonPlayableAD/engine"
)

func TestJournalLogsNotifications(t *testing.T) {
	w, err := engine.NewWorld(engine.DefaultSettings())
	require.NoError(t, err)

	var buf bytes.Buffer
	journal := NewJournalSystem(w, log.New(&buf, "", 0))
	w.AddSystem(journal)

	w.Tick(0)

	out := buf.String()
	assert.Contains(t, out, "GoldChanged balance=20 delta=+0")
	assert.Contains(t, out, "CostsChanged work=1 upgrade=60 expand=100")
	assert.Contains(t, out, "DeskGridChanged office=0 level=0 desks=1")
	assert.Contains(t, out, "QueueChanged length=10 added=10")
	assert.Zero(t, journal.Pending())
}
