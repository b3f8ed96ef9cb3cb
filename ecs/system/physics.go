package system

import (
	"github.com/milk9111/firstperson/ecs"
	"github.com/milk9111/firstperson/ecs/component"
	"github.com/milk9111/firstperson/physics"
)

// PhysicsSystem steps the collision space at a fixed timestep and writes the
// resolved body positions back into entity transforms. Runs after
// locomotion has submitted the frame's walk basis.
type PhysicsSystem struct {
	space *physics.Space
	dt    float32
}

func NewPhysicsSystem(space *physics.Space, dt float32) *PhysicsSystem {
	return &PhysicsSystem{space: space, dt: dt}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if s.space != nil {
		s.space.Step(s.dt)
	}

	ecs.ForEach(w, component.CharacterBodyKind, func(e ecs.Entity, body *component.CharacterBody) {
		if body.Body == nil {
			return
		}
		transform, ok := ecs.Get(w, e, component.TransformKind)
		if !ok {
			return
		}
		transform.Position = body.Body.Position()
	})
}
