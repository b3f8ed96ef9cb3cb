package physics

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

const (
	// Gravity is the downward acceleration applied to airborne bodies, in
	// world units per second squared.
	Gravity = float32(20.0)

	groundedEpsilon = float32(1e-3)
	characterMass   = 1.0
)

// KinematicBody is the concrete character controller: horizontal motion is
// resolved against the Chipmunk space while vertical motion (hover height,
// gravity, jump arc) is integrated here. Ground level is the y = 0 plane.
type KinematicBody struct {
	body *cp.Body

	y  float32
	vy float32

	// Per-step intent, consumed by Step and then cleared. A frame with no
	// basis submission walks the body to a stop.
	walkVelocity mgl32.Vec3
	floatHeight  float32
	basisSet     bool

	jumpRequested  bool
	jumpHeight     float32
	shortenGravity float32

	// shortenActive carries the shorten parameter of the jump currently in
	// flight; it bites once intent stops arriving while still ascending.
	shortenActive float32
}

// NewKinematicBody registers a character body in the space at (x, z) with
// the given shape radius, starting at height y.
func NewKinematicBody(s *Space, x, y, z, radius float32) *KinematicBody {
	body := cp.NewBody(characterMass, math.Inf(1))
	body.SetPosition(cp.Vector{X: float64(x), Y: float64(z)})
	shape := cp.NewCircle(body, float64(radius), cp.Vector{})
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeCharacter)
	s.space.AddBody(body)
	s.space.AddShape(shape)

	kb := &KinematicBody{body: body, y: y}
	s.bodies = append(s.bodies, kb)
	return kb
}

// SetWalkBasis implements Controller.
func (b *KinematicBody) SetWalkBasis(velocity mgl32.Vec3, floatHeight float32) {
	b.walkVelocity = velocity
	b.floatHeight = floatHeight
	b.basisSet = true
}

// RequestJump implements Controller.
func (b *KinematicBody) RequestJump(height, shortenExtraGravity float32) {
	b.jumpRequested = true
	b.jumpHeight = height
	b.shortenGravity = shortenExtraGravity
}

// Position returns the body's world position.
func (b *KinematicBody) Position() mgl32.Vec3 {
	p := b.body.Position()
	return mgl32.Vec3{float32(p.X), b.y, float32(p.Y)}
}

// applyBasis pushes this frame's horizontal intent into the Chipmunk body
// before the space steps.
func (b *KinematicBody) applyBasis() {
	if b.basisSet {
		b.body.SetVelocity(float64(b.walkVelocity.X()), float64(b.walkVelocity.Z()))
	} else {
		b.body.SetVelocity(0, 0)
	}
}

// step integrates vertical motion after the space has resolved horizontal
// collisions.
func (b *KinematicBody) step(dt float32) {
	grounded := b.vy <= 0 && b.y <= b.floatHeight+groundedEpsilon

	if b.jumpRequested && grounded {
		// Initial speed for a ballistic arc peaking jumpHeight above the
		// hover height.
		b.vy = math32.Sqrt(2 * Gravity * b.jumpHeight)
		b.shortenActive = b.shortenGravity
	}

	if !grounded || b.vy > 0 {
		b.vy -= Gravity * dt
		if b.vy > 0 && !b.jumpRequested && b.shortenActive > 0 {
			b.vy -= b.shortenActive * dt
		}
		b.y += b.vy * dt
	}

	// Hover: the controller floats at floatHeight above ground rather than
	// resting on it.
	if b.vy <= 0 && b.y <= b.floatHeight {
		b.y = b.floatHeight
		b.vy = 0
		b.shortenActive = 0
	}

	b.basisSet = false
	b.jumpRequested = false
}

var _ Controller = (*KinematicBody)(nil)
