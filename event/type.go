package event

// EventType represents the type of game event
type EventType int

const (
	// === Requests: input -> core ===

	// EventWorkRequest invokes the work action once
	// Trigger: programmatic, tests | Consumer: WorkSystem | Payload: nil
	EventWorkRequest EventType = iota

	// EventWorkKey is one keyboard pulse of the work trigger, auto-repeat included
	// Trigger: input.Handler | Consumer: HoldSystem | Payload: nil
	EventWorkKey

	// EventWorkHoldStart begins an accelerated work hold
	// Trigger: mouse press on the work button | Consumer: HoldSystem | Payload: nil
	EventWorkHoldStart

	// EventWorkHoldEnd ends a work hold
	// Trigger: mouse release | Consumer: HoldSystem | Payload: nil
	EventWorkHoldEnd

	// EventUpgradeRequest invokes the upgrade action
	// Trigger: input.Handler | Consumer: ProgressionSystem | Payload: nil
	EventUpgradeRequest

	// EventExpandRequest invokes the expand action
	// Trigger: input.Handler | Consumer: ProgressionSystem | Payload: nil
	EventExpandRequest

	// EventDebugToggle flips the metrics overlay
	// Trigger: input.Handler | Consumer: Renderer | Payload: nil
	EventDebugToggle

	// EventResize reports a terminal size change
	// Trigger: input.Handler | Consumer: Renderer | Payload: nil
	EventResize
)

const (
	// === Notifications: core -> view ===

	// EventGoldChanged follows every debit and credit
	// Payload: GoldChangedPayload
	EventGoldChanged EventType = iota + 100

	// EventCostsChanged follows every cost growth
	// Payload: CostsChangedPayload
	EventCostsChanged

	// EventDeskGridChanged follows every regrid
	// Payload: DeskGridChangedPayload
	EventDeskGridChanged

	// EventDeskOccupancyChanged follows a desk claim or release
	// Payload: DeskOccupancyPayload
	EventDeskOccupancyChanged

	// EventQueueChanged follows a refill of the waiting line
	// Payload: QueueChangedPayload
	EventQueueChanged

	// EventNoDeskAvailable is the one work rejection surfaced to the user
	// Payload: nil
	EventNoDeskAvailable

	// EventOfficeUnlocked follows a successful expand
	// Payload: OfficeUnlockedPayload
	EventOfficeUnlocked

	// EventZoomOut fires once, when the unlocked office count reaches two
	// Payload: nil
	EventZoomOut

	// EventWorkCompleted follows a payout
	// Payload: WorkCompletedPayload
	EventWorkCompleted
)

var eventNames = map[EventType]string{
	EventWorkRequest:          "WorkRequest",
	EventWorkKey:              "WorkKey",
	EventWorkHoldStart:        "WorkHoldStart",
	EventWorkHoldEnd:          "WorkHoldEnd",
	EventUpgradeRequest:       "UpgradeRequest",
	EventExpandRequest:        "ExpandRequest",
	EventDebugToggle:          "DebugToggle",
	EventResize:               "Resize",
	EventGoldChanged:          "GoldChanged",
	EventCostsChanged:         "CostsChanged",
	EventDeskGridChanged:      "DeskGridChanged",
	EventDeskOccupancyChanged: "DeskOccupancyChanged",
	EventQueueChanged:         "QueueChanged",
	EventNoDeskAvailable:      "NoDeskAvailable",
	EventOfficeUnlocked:       "OfficeUnlocked",
	EventZoomOut:              "ZoomOut",
	EventWorkCompleted:        "WorkCompleted",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is one queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
