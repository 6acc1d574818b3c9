package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juwon-cha/TycoonPlayableAD/event"
	"github.com/juwon-cha/TycoonPlayableAD/render"
)

// MockScreen is a minimal mock for tcell.Screen used in tests
type MockScreen struct {
	tcell.Screen
	width, height int
	pending       []tcell.Event
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }

func (m *MockScreen) PollEvent() tcell.Event {
	if len(m.pending) == 0 {
		return nil
	}
	ev := m.pending[0]
	m.pending = m.pending[1:]
	return ev
}

type mockPauser struct {
	paused bool
}

func (p *mockPauser) Toggle() bool {
	p.paused = !p.paused
	return p.paused
}

func newTestHandler() (*Handler, *event.EventQueue, *mockPauser, *int) {
	q := event.NewEventQueue()
	p := &mockPauser{}
	quits := 0
	h := NewHandler(q, &MockScreen{width: 100, height: 30}, p, func() { quits++ })
	return h, q, p, &quits
}

func types(q *event.EventQueue) []event.EventType {
	var out []event.EventType
	for _, ev := range q.Consume() {
		out = append(out, ev.Type)
	}
	return out
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		ev     *tcell.EventKey
		intent IntentType
		want   []event.EventType
	}{
		{key('w'), IntentWork, []event.EventType{event.EventWorkKey}},
		{key(' '), IntentWork, []event.EventType{event.EventWorkKey}},
		{key('W'), IntentWork, []event.EventType{event.EventWorkKey}},
		{key('u'), IntentUpgrade, []event.EventType{event.EventUpgradeRequest}},
		{key('e'), IntentExpand, []event.EventType{event.EventExpandRequest}},
		{key('d'), IntentDebug, []event.EventType{event.EventDebugToggle}},
		{key('x'), IntentNone, nil},
	}

	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			h, q, _, _ := newTestHandler()
			assert.Equal(t, tt.intent, h.Handle(tt.ev))
			assert.Equal(t, tt.want, types(q))
		})
	}
}

func TestQuitKeys(t *testing.T) {
	h, q, _, quits := newTestHandler()

	h.Handle(key('q'))
	h.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	h.Handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))

	assert.Equal(t, 3, *quits)
	assert.Empty(t, types(q))
}

func TestPauseKeyTogglesClock(t *testing.T) {
	h, q, p, _ := newTestHandler()

	assert.Equal(t, IntentPause, h.Handle(key('p')))
	assert.True(t, p.paused)
	h.Handle(key('p'))
	assert.False(t, p.paused)
	assert.Empty(t, types(q))
}

func TestResize(t *testing.T) {
	h, q, _, _ := newTestHandler()
	assert.Equal(t, IntentResize, h.Handle(tcell.NewEventResize(120, 40)))
	assert.Equal(t, []event.EventType{event.EventResize}, types(q))
}

func TestMouseWorkButtonHolds(t *testing.T) {
	h, q, _, _ := newTestHandler()
	work := render.ButtonRects(100, 30)[0]

	press := tcell.NewEventMouse(work.X+1, work.Y+1, tcell.Button1, tcell.ModNone)
	assert.Equal(t, IntentWork, h.Handle(press))

	// Drag repeats are ignored
	h.Handle(tcell.NewEventMouse(work.X+2, work.Y+1, tcell.Button1, tcell.ModNone))
	h.Handle(tcell.NewEventMouse(work.X+2, work.Y+1, tcell.ButtonNone, tcell.ModNone))

	assert.Equal(t, []event.EventType{event.EventWorkHoldStart, event.EventWorkHoldEnd}, types(q))
}

func TestMouseOtherButtons(t *testing.T) {
	h, q, _, _ := newTestHandler()
	rects := render.ButtonRects(100, 30)

	for _, r := range rects[1:] {
		h.Handle(tcell.NewEventMouse(r.X, r.Y, tcell.Button1, tcell.ModNone))
		h.Handle(tcell.NewEventMouse(r.X, r.Y, tcell.ButtonNone, tcell.ModNone))
	}
	// Outside every button
	h.Handle(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	h.Handle(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))

	assert.Equal(t, []event.EventType{event.EventUpgradeRequest, event.EventExpandRequest}, types(q))
}

func TestRunDrainsUntilNil(t *testing.T) {
	q := event.NewEventQueue()
	screen := &MockScreen{width: 100, height: 30, pending: []tcell.Event{key('w'), key('u')}}
	h := NewHandler(q, screen, nil, nil)

	h.Run()
	require.Empty(t, screen.pending)
	assert.Equal(t, []event.EventType{event.EventWorkKey, event.EventUpgradeRequest}, types(q))

	// Nil collaborators are tolerated
	h.Handle(key('q'))
	h.Handle(key('p'))
}
