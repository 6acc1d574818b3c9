package engine

import "github.com/juwon-cha/TycoonPlayableAD/core"

// WorkQueue is the FIFO waiting line of idle workers
type WorkQueue struct {
	workers []core.Entity
	target  int
}

// NewWorkQueue creates an empty line that Refill tops up to target
func NewWorkQueue(target int) *WorkQueue {
	return &WorkQueue{
		workers: make([]core.Entity, 0, target),
		target:  target,
	}
}

// TryDequeueFront removes the front worker, false when the line is empty
func (q *WorkQueue) TryDequeueFront() (core.Entity, bool) {
	if len(q.workers) == 0 {
		return core.None, false
	}
	e := q.workers[0]
	copy(q.workers, q.workers[1:])
	q.workers = q.workers[:len(q.workers)-1]
	return e, true
}

// EnqueueBack appends a worker
func (q *WorkQueue) EnqueueBack(e core.Entity) {
	q.workers = append(q.workers, e)
}

// Refill appends workers from acquire until the line reaches its target length
// Returns the appended workers in line order
func (q *WorkQueue) Refill(acquire func() core.Entity) []core.Entity {
	var added []core.Entity
	for len(q.workers) < q.target {
		e := acquire()
		q.EnqueueBack(e)
		added = append(added, e)
	}
	return added
}

// Len returns the current line length
func (q *WorkQueue) Len() int {
	return len(q.workers)
}

// Target returns the length Refill restores
func (q *WorkQueue) Target() int {
	return q.target
}

// At returns the worker at slot i, front is slot 0
func (q *WorkQueue) At(i int) core.Entity {
	return q.workers[i]
}

// Workers returns a copy of the line, front first
func (q *WorkQueue) Workers() []core.Entity {
	out := make([]core.Entity, len(q.workers))
	copy(out, q.workers)
	return out
}
