package event

import "github.com/juwon-cha/TycoonPlayableAD/core"

// GoldChangedPayload carries the balance after a change
type GoldChangedPayload struct {
	Balance int64
	Delta   int64
}

// CostsChangedPayload carries the current action prices
type CostsChangedPayload struct {
	Work    int64
	Upgrade int64
	Expand  int64
}

// DeskGridChangedPayload describes an office after regrid
type DeskGridChangedPayload struct {
	Office core.Entity
	Index  int
	Level  int
	Desks  int
}

// DeskOccupancyPayload describes one desk claim or release
type DeskOccupancyPayload struct {
	Desk     core.Entity
	Worker   core.Entity
	Occupied bool
}

// QueueChangedPayload carries the waiting line length after refill
type QueueChangedPayload struct {
	Length int
	Added  int
}

// OfficeUnlockedPayload describes a newly unlocked office
type OfficeUnlockedPayload struct {
	Office   core.Entity
	Index    int
	Level    int
	Unlocked int
}

// WorkCompletedPayload describes a payout
type WorkCompletedPayload struct {
	Worker core.Entity
	Desk   core.Entity
	Reward int64
}
