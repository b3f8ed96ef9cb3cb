package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/firstperson/ecs"
	"github.com/milk9111/firstperson/ecs/component"
	"github.com/milk9111/firstperson/prefabs"
)

// NewCamera builds the singleton camera entity rigged to the given parent at
// the prefab's local offset, with pitch level.
func NewCamera(w *ecs.World, parent ecs.Entity) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraTagKind, &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformKind, component.NewTransform(mgl32.Vec3{})); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraRigKind, &component.CameraRig{
		Parent:        uint64(parent),
		LocalOffset:   mgl32.Vec3{spec.Offset.X, spec.Offset.Y, spec.Offset.Z},
		LocalRotation: mgl32.QuatIdent(),
		Sensitivity:   spec.Sensitivity,
	}); err != nil {
		return 0, fmt.Errorf("camera: add rig: %w", err)
	}

	return camera, nil
}
