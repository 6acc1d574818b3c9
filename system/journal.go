package system

import (
	"fmt"
	"log"

	"github.com/juwon-cha/TycoonPlayableAD/engine"
	"github.com/juwon-cha/TycoonPlayableAD/event"
	"github.com/juwon-cha/TycoonPlayableAD/parameter"
)

// JournalSystem writes core notifications to the debug log, one flush per tick
type JournalSystem struct {
	world   *engine.World
	logger  *log.Logger
	pending []string
}

// NewJournalSystem creates a journal writing through logger, nil selects the standard logger
func NewJournalSystem(world *engine.World, logger *log.Logger) *JournalSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &JournalSystem{
		world:  world,
		logger: logger,
	}
}

// Name returns system's name
func (s *JournalSystem) Name() string {
	return "journal"
}

// Priority returns the system's priority
func (s *JournalSystem) Priority() int {
	return parameter.PriorityJournal
}

// EventTypes returns the event types JournalSystem handles
func (s *JournalSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGoldChanged,
		event.EventCostsChanged,
		event.EventDeskGridChanged,
		event.EventQueueChanged,
		event.EventNoDeskAvailable,
		event.EventOfficeUnlocked,
		event.EventZoomOut,
		event.EventWorkCompleted,
	}
}

// HandleEvent formats a notification for the next flush
func (s *JournalSystem) HandleEvent(ev event.GameEvent) {
	var detail string
	switch p := ev.Payload.(type) {
	case event.GoldChangedPayload:
		detail = fmt.Sprintf("balance=%d delta=%+d", p.Balance, p.Delta)
	case event.CostsChangedPayload:
		detail = fmt.Sprintf("work=%d upgrade=%d expand=%d", p.Work, p.Upgrade, p.Expand)
	case event.DeskGridChangedPayload:
		detail = fmt.Sprintf("office=%d level=%d desks=%d", p.Index, p.Level, p.Desks)
	case event.QueueChangedPayload:
		detail = fmt.Sprintf("length=%d added=%d", p.Length, p.Added)
	case event.OfficeUnlockedPayload:
		detail = fmt.Sprintf("office=%d level=%d unlocked=%d", p.Index, p.Level, p.Unlocked)
	case event.WorkCompletedPayload:
		detail = fmt.Sprintf("worker=%d desk=%d reward=%d", p.Worker, p.Desk, p.Reward)
	}
	s.pending = append(s.pending, fmt.Sprintf("[%d] %s %s", ev.Frame, ev.Type, detail))
}

// Update flushes the lines gathered this tick
func (s *JournalSystem) Update() {
	for _, line := range s.pending {
		s.logger.Print(line)
	}
	s.pending = s.pending[:0]
}

// Pending returns the number of unflushed lines
func (s *JournalSystem) Pending() int {
	return len(s.pending)
}
