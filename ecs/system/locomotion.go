package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/firstperson/common"
	"github.com/milk9111/firstperson/ecs"
	"github.com/milk9111/firstperson/ecs/component"
)

// LocomotionSystem converts held movement keys into a walk basis for the
// character controller. It must run after the look update so the direction
// reflects this frame's yaw.
//
// The basis is submitted every frame regardless of key state (the controller
// expects exactly one basis per stepped frame); the jump request is
// level-triggered while Space is held and the controller owns debouncing.
type LocomotionSystem struct{}

func NewLocomotionSystem() *LocomotionSystem {
	return &LocomotionSystem{}
}

func (s *LocomotionSystem) Update(w *ecs.World) {
	player, loco := ecs.Single(w, component.LocomotionKind)

	input, ok := ecs.Get(w, player, component.InputKind)
	if !ok {
		panic("locomotion: player entity has no input snapshot")
	}
	transform, ok := ecs.Get(w, player, component.TransformKind)
	if !ok {
		panic("locomotion: player entity has no transform")
	}
	body, ok := ecs.Get(w, player, component.CharacterBodyKind)
	if !ok || body.Controller == nil {
		panic("locomotion: player entity has no character controller")
	}

	// Unit contributions in player-local axes; opposite keys cancel
	// exactly. Forward is -Z.
	var direction mgl32.Vec3
	if input.Forward {
		direction = direction.Sub(mgl32.Vec3{0, 0, 1})
	}
	if input.Back {
		direction = direction.Add(mgl32.Vec3{0, 0, 1})
	}
	if input.Left {
		direction = direction.Sub(mgl32.Vec3{1, 0, 0})
	}
	if input.Right {
		direction = direction.Add(mgl32.Vec3{1, 0, 0})
	}

	// Rotate into world space by the player's current yaw, then flatten:
	// vertical intent belongs to the controller, never to this layer.
	direction = transform.Rotation.Rotate(direction)
	direction[1] = 0

	velocity := common.NormalizeOrZero(direction).Mul(loco.WalkSpeed)
	body.Controller.SetWalkBasis(velocity, loco.FloatHeight)

	if input.Jump {
		body.Controller.RequestJump(loco.JumpHeight, loco.JumpShortenGravity)
	}
}
