package system

import (
	"github.com/milk9111/firstperson/ecs"
	"github.com/milk9111/firstperson/ecs/component"
)

// CameraRigSystem derives the camera's world pose from its parent:
// world rotation = parent yaw x local pitch, world position = parent
// position plus the rotated local offset. Runs after physics has settled the
// parent's position for the frame.
type CameraRigSystem struct{}

func NewCameraRigSystem() *CameraRigSystem {
	return &CameraRigSystem{}
}

func (s *CameraRigSystem) Update(w *ecs.World) {
	camera, rig := ecs.Single(w, component.CameraRigKind)

	parent := ecs.Entity(rig.Parent)
	parentTransform, ok := ecs.Get(w, parent, component.TransformKind)
	if !ok {
		panic("camera rig: parent entity has no transform")
	}
	transform, ok := ecs.Get(w, camera, component.TransformKind)
	if !ok {
		panic("camera rig: camera entity has no transform")
	}

	transform.Rotation = parentTransform.Rotation.Mul(rig.LocalRotation)
	transform.Position = parentTransform.Position.Add(parentTransform.Rotation.Rotate(rig.LocalOffset))
}
