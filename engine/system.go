package engine

// System is a unit of game logic run once per tick
// Systems run in ascending Priority order; lower values run first
type System interface {
	Update()
	Priority() int
}
