package engine

import "math"

// Action is a priced player action
type Action uint8

const (
	ActionWork Action = iota
	ActionUpgrade
	ActionExpand
)

func (a Action) String() string {
	switch a {
	case ActionWork:
		return "work"
	case ActionUpgrade:
		return "upgrade"
	case ActionExpand:
		return "expand"
	default:
		return "unknown"
	}
}

// Economy holds the gold balance and the escalating action prices
// Balance never goes negative: every spend checks the current price first
type Economy struct {
	Balance    int64
	WorkReward int64

	costs  [3]int64
	growth [3]int64
}

// NewEconomy creates the economy from settings
func NewEconomy(s Settings) *Economy {
	return &Economy{
		Balance:    s.StartingGold,
		WorkReward: s.WorkReward,
		costs:      [3]int64{s.WorkCost, s.UpgradeCost, s.ExpandCost},
		growth:     [3]int64{s.WorkCostGrowth, s.UpgradeCostGrowth, s.ExpandCostGrowth},
	}
}

// Cost returns the current price of an action
func (e *Economy) Cost(a Action) int64 {
	return e.costs[a]
}

// SetCost overrides the current price of an action
func (e *Economy) SetCost(a Action, cost int64) {
	e.costs[a] = cost
}

// CanAfford reports whether the balance covers the current price of a
func (e *Economy) CanAfford(a Action) bool {
	return e.Balance >= e.costs[a]
}

// Charge debits the current price of a and grows that price for next time
// Returns the amount debited, or ErrInsufficientFunds with no state change
func (e *Economy) Charge(a Action) (int64, error) {
	cost := e.costs[a]
	if e.Balance < cost {
		return 0, ErrInsufficientFunds
	}
	e.Balance -= cost
	e.costs[a] = grow(cost, e.growth[a])
	return cost, nil
}

// Credit adds amount to the balance, saturating at the integer maximum
func (e *Economy) Credit(amount int64) {
	if amount <= 0 {
		return
	}
	if e.Balance > math.MaxInt64-amount {
		e.Balance = math.MaxInt64
		return
	}
	e.Balance += amount
}

func grow(cost, factor int64) int64 {
	if cost == 0 || factor <= 1 {
		return cost
	}
	if cost > math.MaxInt64/factor {
		return math.MaxInt64
	}
	return cost * factor
}
