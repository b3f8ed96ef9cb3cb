package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/firstperson/common"
	"github.com/milk9111/firstperson/ecs"
	"github.com/milk9111/firstperson/ecs/component"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// LookSystem turns the frame's pointer-motion deltas into player yaw and
// camera pitch. Yaw composes onto the player's current orientation about
// world up, so it accumulates without explicit wraparound. Pitch goes
// through the rig's clamped accumulator and is assigned to the local
// rotation absolutely.
//
// Gated by capture mode: while the cursor is free, deltas are dropped.
type LookSystem struct{}

func NewLookSystem() *LookSystem {
	return &LookSystem{}
}

func (s *LookSystem) Update(w *ecs.World) {
	player, capture := ecs.Single(w, component.CursorCaptureKind)
	if !capture.Captured {
		return
	}

	input, ok := ecs.Get(w, player, component.InputKind)
	if !ok || len(input.Deltas) == 0 {
		return
	}

	transform, ok := ecs.Get(w, player, component.TransformKind)
	if !ok {
		panic("look: player entity has no transform")
	}
	_, rig := ecs.Single(w, component.CameraRigKind)

	// Fold events in arrival order; the clamp must hold at every
	// intermediate step, not just on the frame total.
	for _, d := range input.Deltas {
		transform.Rotation = mgl32.QuatRotate(-d.DX*rig.Sensitivity, worldUp).Mul(transform.Rotation)

		rig.Pitch = common.Clamp(rig.Pitch-d.DY*rig.Sensitivity, -math.Pi/2, math.Pi/2)
		rig.LocalRotation = mgl32.QuatRotate(rig.Pitch, mgl32.Vec3{1, 0, 0})
	}
}
