package component

import "github.com/go-gl/mathgl/mgl32"

// Transform is a world-space pose. The player's rotation is mutated only by
// yaw composition about world up; the camera's transform is derived from its
// rig every frame.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewTransform returns an identity-rotation transform at pos.
func NewTransform(pos mgl32.Vec3) *Transform {
	return &Transform{Position: pos, Rotation: mgl32.QuatIdent()}
}

var TransformKind = NewComponent[Transform]()
