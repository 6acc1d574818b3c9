package engine

import "errors"

// Expected precondition failures of player actions
// None of them mutate state; all checks run before any debit
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrQueueEmpty        = errors.New("waiting line is empty")
	ErrNoDeskAvailable   = errors.New("no desk available")
	ErrMaxLevel          = errors.New("max level reached")
	ErrMaxExpansion      = errors.New("max expansion reached")
)
