package engine

import (
	"fmt"
	"time"

	"github.com/juwon-cha/TycoonPlayableAD/parameter"
)

// Settings holds every tunable the world is built from
type Settings struct {
	StartingGold int64
	WorkCost     int64
	WorkReward   int64
	UpgradeCost  int64
	ExpandCost   int64

	WorkCostGrowth    int64
	UpgradeCostGrowth int64
	ExpandCostGrowth  int64

	QueueSize  int
	MaxOffices int

	TravelDuration     time.Duration
	WorkDuration       time.Duration
	ReturnDuration     time.Duration
	QueueShiftDuration time.Duration

	TickInterval time.Duration

	HoldInitialInterval time.Duration
	HoldMinInterval     time.Duration
	HoldAcceleration    float64
	KeyHoldTimeout      time.Duration
}

// DefaultSettings returns the stock tuning
func DefaultSettings() Settings {
	return Settings{
		StartingGold: parameter.StartingGold,
		WorkCost:     parameter.WorkCost,
		WorkReward:   parameter.WorkReward,
		UpgradeCost:  parameter.UpgradeCost,
		ExpandCost:   parameter.ExpandCost,

		WorkCostGrowth:    parameter.WorkCostGrowth,
		UpgradeCostGrowth: parameter.UpgradeCostGrowth,
		ExpandCostGrowth:  parameter.ExpandCostGrowth,

		QueueSize:  parameter.WorkQueueSize,
		MaxOffices: parameter.MaxOfficeCount,

		TravelDuration:     parameter.TravelDuration,
		WorkDuration:       parameter.WorkDuration,
		ReturnDuration:     parameter.ReturnDuration,
		QueueShiftDuration: parameter.QueueShiftDuration,

		TickInterval: parameter.GameUpdateInterval,

		HoldInitialInterval: parameter.HoldInitialInterval,
		HoldMinInterval:     parameter.HoldMinInterval,
		HoldAcceleration:    parameter.HoldAcceleration,
		KeyHoldTimeout:      parameter.KeyHoldTimeout,
	}
}

// Validate rejects settings the world cannot be built from
func (s Settings) Validate() error {
	switch {
	case s.StartingGold < 0:
		return fmt.Errorf("starting gold must be non-negative")
	case s.WorkCost < 0 || s.UpgradeCost < 0 || s.ExpandCost < 0:
		return fmt.Errorf("costs must be non-negative")
	case s.WorkReward < 0:
		return fmt.Errorf("work reward must be non-negative")
	case s.WorkCostGrowth < 1 || s.UpgradeCostGrowth < 1 || s.ExpandCostGrowth < 1:
		return fmt.Errorf("cost growth factors must be >= 1")
	case s.QueueSize < 1:
		return fmt.Errorf("queue size must be >= 1")
	case s.MaxOffices < 1 || s.MaxOffices > parameter.MaxOfficeCount:
		return fmt.Errorf("max offices must be between 1 and %d", parameter.MaxOfficeCount)
	case s.TravelDuration < 0 || s.WorkDuration < 0 || s.ReturnDuration < 0 || s.QueueShiftDuration < 0:
		return fmt.Errorf("durations must be non-negative")
	case s.TickInterval <= 0:
		return fmt.Errorf("tick interval must be positive")
	case s.HoldMinInterval <= 0 || s.HoldInitialInterval < s.HoldMinInterval:
		return fmt.Errorf("hold intervals must satisfy 0 < min <= initial")
	case s.HoldAcceleration < 0:
		return fmt.Errorf("hold acceleration must be non-negative")
	case s.KeyHoldTimeout <= 0:
		return fmt.Errorf("key hold timeout must be positive")
	}
	return nil
}
