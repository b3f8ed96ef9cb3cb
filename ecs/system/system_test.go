package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/firstperson/ecs"
	"github.com/milk9111/firstperson/ecs/component"
)

// fakeController records the walk basis and jump requests it receives, so
// tests observe exactly what the locomotion system forwards.
type fakeController struct {
	basisCalls   int
	lastVelocity mgl32.Vec3
	lastHeight   float32

	jumpCalls      int
	lastJumpHeight float32
	lastShorten    float32
}

func (f *fakeController) SetWalkBasis(velocity mgl32.Vec3, floatHeight float32) {
	f.basisCalls++
	f.lastVelocity = velocity
	f.lastHeight = floatHeight
}

func (f *fakeController) RequestJump(height, shortenExtraGravity float32) {
	f.jumpCalls++
	f.lastJumpHeight = height
	f.lastShorten = shortenExtraGravity
}

type fakeCursor struct {
	calls []bool
}

func (f *fakeCursor) SetCaptured(captured bool) {
	f.calls = append(f.calls, captured)
}

const testSensitivity = float32(0.005)

// newTestWorld builds the singleton player+camera pair the frame systems
// expect, with a fake character controller installed.
func newTestWorld(t *testing.T, captured bool) (*ecs.World, ecs.Entity, ecs.Entity, *fakeController) {
	t.Helper()

	w := ecs.NewWorld()
	ctrl := &fakeController{}

	mustAdd := func(name string, err error) {
		if err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	player := w.CreateEntity()
	mustAdd("tag", ecs.Add(w, player, component.PlayerTagKind, &component.PlayerTag{}))
	mustAdd("transform", ecs.Add(w, player, component.TransformKind, component.NewTransform(mgl32.Vec3{0, 1.5, 0})))
	mustAdd("input", ecs.Add(w, player, component.InputKind, &component.Input{}))
	mustAdd("capture", ecs.Add(w, player, component.CursorCaptureKind, &component.CursorCapture{Captured: captured}))
	mustAdd("locomotion", ecs.Add(w, player, component.LocomotionKind, &component.Locomotion{
		WalkSpeed:   10,
		FloatHeight: 1.5,
		JumpHeight:  4,
	}))
	mustAdd("body", ecs.Add(w, player, component.CharacterBodyKind, &component.CharacterBody{Controller: ctrl}))

	camera := w.CreateEntity()
	mustAdd("camera transform", ecs.Add(w, camera, component.TransformKind, component.NewTransform(mgl32.Vec3{})))
	mustAdd("camera rig", ecs.Add(w, camera, component.CameraRigKind, &component.CameraRig{
		Parent:        uint64(player),
		LocalOffset:   mgl32.Vec3{0, 0.5, 0},
		LocalRotation: mgl32.QuatIdent(),
		Sensitivity:   testSensitivity,
	}))

	return w, player, camera, ctrl
}

func setDeltas(t *testing.T, w *ecs.World, player ecs.Entity, deltas ...component.MouseDelta) {
	t.Helper()
	input, ok := ecs.Get(w, player, component.InputKind)
	if !ok {
		t.Fatalf("player has no input component")
	}
	input.Deltas = deltas
}

func vec3ApproxEq(t *testing.T, got, want mgl32.Vec3, eps float32) {
	t.Helper()
	for i := 0; i < 3; i++ {
		d := got[i] - want[i]
		if d < -eps || d > eps {
			t.Fatalf("vector mismatch: got %v, want %v", got, want)
		}
	}
}
