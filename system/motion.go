package system

import (
	"github.com/juwon-cha/TycoonPlayableAD/component"
	"github.com/juwon-cha/TycoonPlayableAD/engine"
	"github.com/juwon-cha/TycoonPlayableAD/parameter"
)

// MotionSystem advances position tweens and drops them on arrival
type MotionSystem struct {
	world *engine.World
}

// NewMotionSystem creates the tween system
func NewMotionSystem(world *engine.World) *MotionSystem {
	return &MotionSystem{world: world}
}

// Name returns system's name
func (s *MotionSystem) Name() string {
	return "motion"
}

// Priority returns the system's priority
func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

// Update moves every tweened entity along its eased path
func (s *MotionSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime

	for _, e := range s.world.Motions.GetAllEntities() {
		m, ok := s.world.Motions.GetComponent(e)
		if !ok {
			continue
		}

		m.Elapsed += dt
		s.world.Positions.SetComponent(e, component.PositionComponent{Vec2: m.Sample()})

		if m.Done() {
			s.world.Motions.RemoveEntity(e)
		} else {
			s.world.Motions.SetComponent(e, m)
		}
	}
}
