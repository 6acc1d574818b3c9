package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/juwon-cha/TycoonPlayableAD/event"
	"github.com/juwon-cha/TycoonPlayableAD/render"
)

// Pauser toggles game time
type Pauser interface {
	Toggle() bool
}

// Handler translates terminal events into game events
// It runs on the poll goroutine and never touches the world; everything goes through the event queue
type Handler struct {
	queue    *event.EventQueue
	screen   tcell.Screen
	keys     *KeyTable
	pauser   Pauser
	quit     func()
	mouseBtn render.Button
}

// NewHandler creates a handler pushing into queue; quit is called once per quit request
func NewHandler(queue *event.EventQueue, screen tcell.Screen, pauser Pauser, quit func()) *Handler {
	return &Handler{
		queue:  queue,
		screen: screen,
		keys:   DefaultKeyTable(),
		pauser: pauser,
		quit:   quit,
	}
}

// Run polls the screen until it is finalized
func (h *Handler) Run() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		h.Handle(ev)
	}
}

// Handle processes one terminal event and returns the resolved intent
func (h *Handler) Handle(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := h.keys.Lookup(ev)
		h.dispatch(intent)
		return intent
	case *tcell.EventMouse:
		return h.handleMouse(ev)
	case *tcell.EventResize:
		h.dispatch(IntentResize)
		return IntentResize
	}
	return IntentNone
}

// handleMouse maps a press on the work button to a hold and the other buttons to single actions
func (h *Handler) handleMouse(ev *tcell.EventMouse) IntentType {
	pressed := ev.Buttons()&tcell.Button1 != 0

	if !pressed {
		if h.mouseBtn == render.ButtonWork {
			h.push(event.EventWorkHoldEnd)
		}
		h.mouseBtn = render.ButtonNone
		return IntentNone
	}

	// Drag events repeat the press, only the first one counts
	if h.mouseBtn != render.ButtonNone {
		return IntentNone
	}

	width, height := h.screen.Size()
	x, y := ev.Position()
	h.mouseBtn = render.ButtonAt(width, height, x, y)

	switch h.mouseBtn {
	case render.ButtonWork:
		h.push(event.EventWorkHoldStart)
		return IntentWork
	case render.ButtonUpgrade:
		h.dispatch(IntentUpgrade)
		return IntentUpgrade
	case render.ButtonExpand:
		h.dispatch(IntentExpand)
		return IntentExpand
	}
	return IntentNone
}

// dispatch performs an intent
// Keyboard work is a pulse, the hold system turns a pulse stream into a hold
func (h *Handler) dispatch(intent IntentType) {
	switch intent {
	case IntentQuit:
		if h.quit != nil {
			h.quit()
		}
	case IntentPause:
		if h.pauser != nil {
			h.pauser.Toggle()
		}
	case IntentDebug:
		h.push(event.EventDebugToggle)
	case IntentResize:
		h.push(event.EventResize)
	case IntentWork:
		h.push(event.EventWorkKey)
	case IntentUpgrade:
		h.push(event.EventUpgradeRequest)
	case IntentExpand:
		h.push(event.EventExpandRequest)
	}
}

func (h *Handler) push(t event.EventType) {
	h.queue.Emit(t, nil, 0)
}
