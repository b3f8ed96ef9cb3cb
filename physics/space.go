package physics

import "github.com/jakecoffman/cp"

const (
	collisionTypeStatic cp.CollisionType = iota + 1
	collisionTypeCharacter
)

// Space owns the Chipmunk space used for horizontal-plane collision. The
// world's XZ plane maps onto the 2D space (cp X = world X, cp Y = world Z);
// vertical motion never enters Chipmunk and is integrated per body.
type Space struct {
	space  *cp.Space
	bodies []*KinematicBody
}

// NewSpace creates an empty collision space.
func NewSpace() *Space {
	space := cp.NewSpace()
	space.Iterations = 20
	// No gravity: the plane is horizontal.
	space.SetGravity(cp.Vector{})
	return &Space{space: space}
}

// AddStaticBox adds an immovable obstacle footprint centered at (x, z) with
// the given extents along X and Z.
func (s *Space) AddStaticBox(x, z, width, depth float32) {
	if s == nil || s.space == nil {
		return
	}
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: float64(x), Y: float64(z)})
	shape := cp.NewBox(body, float64(width), float64(depth), 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeStatic)
	s.space.AddBody(body)
	s.space.AddShape(shape)
}

// Step advances the space and every registered body by dt seconds.
func (s *Space) Step(dt float32) {
	if s == nil || s.space == nil || dt <= 0 {
		return
	}
	for _, b := range s.bodies {
		b.applyBasis()
	}
	s.space.Step(float64(dt))
	for _, b := range s.bodies {
		b.step(dt)
	}
}
