package engine

import (
	"sync/atomic"

	"github.com/juwon-cha/TycoonPlayableAD/core"
)

// EntityPool recycles entities that carry a component of type T
// Acquire hands out a released entity when one exists, else reserves a new one
// Either way the entity leaves Acquire holding a freshly reset T
type EntityPool[T any] struct {
	world *World
	store *Store[T]
	reset func() T

	free   []core.Entity
	parked map[core.Entity]struct{}

	statAllocated *atomic.Int64
	statReused    *atomic.Int64
	statActive    *atomic.Int64
}

// NewEntityPool creates a pool over store; name prefixes the pool metrics
func NewEntityPool[T any](w *World, store *Store[T], name string, reset func() T) *EntityPool[T] {
	reg := w.Resources.Status
	return &EntityPool[T]{
		world:         w,
		store:         store,
		reset:         reset,
		parked:        make(map[core.Entity]struct{}),
		statAllocated: reg.Counter("pool." + name + ".allocated"),
		statReused:    reg.Counter("pool." + name + ".reused"),
		statActive:    reg.Counter("pool." + name + ".active"),
	}
}

// Acquire returns a reset entity, reusing the most recently released one first
func (p *EntityPool[T]) Acquire() core.Entity {
	var e core.Entity
	if n := len(p.free); n > 0 {
		e = p.free[n-1]
		p.free = p.free[:n-1]
		delete(p.parked, e)
		p.statReused.Add(1)
	} else {
		e = p.world.CreateEntity()
		p.statAllocated.Add(1)
	}

	p.store.SetComponent(e, p.reset())
	p.statActive.Add(1)
	return e
}

// Release detaches e from every store and parks it for reuse
// Releasing an entity twice or releasing core.None is a no-op
func (p *EntityPool[T]) Release(e core.Entity) {
	if e == core.None {
		return
	}
	if _, ok := p.parked[e]; ok {
		return
	}

	p.world.detach(e)
	p.parked[e] = struct{}{}
	p.free = append(p.free, e)
	p.statActive.Add(-1)
}

// Available returns the number of parked entities
func (p *EntityPool[T]) Available() int {
	return len(p.free)
}

// IsParked reports whether e is currently held by the pool
func (p *EntityPool[T]) IsParked(e core.Entity) bool {
	_, ok := p.parked[e]
	return ok
}
