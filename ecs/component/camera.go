package component

import "github.com/go-gl/mathgl/mgl32"

// CameraRig attaches the camera to its parent entity at a fixed local
// offset.
//
// Pitch is accumulated separately from any rotation state because it has to
// be clamped and re-applied as an absolute rotation about local X every
// update; composing incremental rotations would drift past the clamp.
// LocalRotation is always assigned from Pitch, never composed.
type CameraRig struct {
	Parent        uint64
	LocalOffset   mgl32.Vec3
	LocalRotation mgl32.Quat

	// Pitch in radians, kept within [-pi/2, pi/2].
	Pitch float32

	// Sensitivity scales raw device deltas into radians.
	Sensitivity float32
}

var CameraRigKind = NewComponent[CameraRig]()
