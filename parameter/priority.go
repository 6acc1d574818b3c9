package parameter

// System Execution Priorities (lower runs first)
// Hold fires work before cycles advance, motion runs after work so new travel tweens start this tick
const (
	PriorityHold    = 10
	PriorityWork    = 20
	PriorityMotion  = 30
	PriorityJournal = 900
)
