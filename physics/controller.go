package physics

import "github.com/go-gl/mathgl/mgl32"

// Controller is the character-controller contract the locomotion system
// depends on. Implementations resolve ground contact, slopes, and collision
// response themselves; the caller only states intent.
type Controller interface {
	// SetWalkBasis overwrites this frame's movement intent with a desired
	// horizontal velocity and the hover height to maintain above ground.
	// The caller submits exactly one basis per stepped frame; a frame
	// without a submission means "no movement intent", not "repeat last".
	SetWalkBasis(velocity mgl32.Vec3, floatHeight float32)

	// RequestJump submits jump intent for this frame. It is level-triggered:
	// callers re-submit every frame the jump key is held, and the
	// implementation owns debouncing and airtime rules. shortenExtraGravity
	// is extra downward acceleration applied while still ascending after
	// the intent stops arriving, cutting the jump short.
	RequestJump(height, shortenExtraGravity float32)
}
