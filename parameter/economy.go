package parameter

// Starting economy, all amounts in gold
const (
	StartingGold       = 20
	WorkCost           = 1
	WorkReward         = 10
	UpgradeCost        = 60
	ExpandCost         = 100
	DefaultCostGrowth  = 2
	WorkCostGrowth     = DefaultCostGrowth
	UpgradeCostGrowth  = DefaultCostGrowth
	ExpandCostGrowth   = DefaultCostGrowth
	MaxOfficeCount     = 4
	StartOfficeCount   = 1
	WorkQueueSize      = 10
	PrimaryOfficeIndex = 0
)
