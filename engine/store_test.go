package engine

import (
	"testing"

	"github.com/juwon-cha/TycoonPlayableAD/core"
)

type testComponent struct {
	Value int
}

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[testComponent]()

	s.SetComponent(1, testComponent{Value: 10})
	s.SetComponent(2, testComponent{Value: 20})
	s.SetComponent(1, testComponent{Value: 11})

	if got := s.CountEntities(); got != 2 {
		t.Fatalf("CountEntities() = %d, want 2", got)
	}
	if c, ok := s.GetComponent(1); !ok || c.Value != 11 {
		t.Errorf("GetComponent(1) = %v, %v, want {11}, true", c, ok)
	}

	s.RemoveEntity(1)
	if s.HasEntity(1) {
		t.Error("entity 1 still present after RemoveEntity")
	}
	if got := s.GetAllEntities(); len(got) != 1 || got[0] != 2 {
		t.Errorf("GetAllEntities() = %v, want [2]", got)
	}

	// Removing an absent entity is a no-op
	s.RemoveEntity(99)
	if got := s.CountEntities(); got != 1 {
		t.Errorf("CountEntities() after absent remove = %d, want 1", got)
	}
}

func TestStoreGetAllEntitiesReturnsCopy(t *testing.T) {
	s := NewStore[testComponent]()
	s.SetComponent(core.Entity(5), testComponent{})

	list := s.GetAllEntities()
	list[0] = 42

	if !s.HasEntity(5) || s.GetAllEntities()[0] != 5 {
		t.Error("mutating the returned slice changed the store")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[testComponent]()
	for i := core.Entity(1); i <= 5; i++ {
		s.SetComponent(i, testComponent{Value: int(i)})
	}
	s.ClearAllComponents()

	if s.CountEntities() != 0 || s.HasEntity(3) {
		t.Error("store not empty after ClearAllComponents")
	}
}
