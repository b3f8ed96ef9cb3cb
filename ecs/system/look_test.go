package system

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/firstperson/ecs"
	"github.com/milk9111/firstperson/ecs/component"
)

// forward returns the player's facing direction after look updates.
func forward(t *testing.T, w *ecs.World, player ecs.Entity) mgl32.Vec3 {
	t.Helper()
	transform, ok := ecs.Get(w, player, component.TransformKind)
	if !ok {
		t.Fatalf("player has no transform")
	}
	return transform.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

func TestLookYawFromDX(t *testing.T) {
	// dx=100 at sensitivity 0.005 is a -0.5 rad yaw turn about world up.
	w, player, camera, _ := newTestWorld(t, true)
	setDeltas(t, w, player, component.MouseDelta{DX: 100})

	NewLookSystem().Update(w)

	yaw := float32(-0.5)
	want := mgl32.Vec3{-math32.Sin(yaw), 0, -math32.Cos(yaw)}
	vec3ApproxEq(t, forward(t, w, player), want, 1e-5)

	// dx must leave pitch alone.
	rig, ok := ecs.Get(w, camera, component.CameraRigKind)
	if !ok {
		t.Fatalf("camera has no rig")
	}
	if rig.Pitch != 0 {
		t.Fatalf("pitch changed on pure dx input: %v", rig.Pitch)
	}
}

func TestLookPitchFromDY(t *testing.T) {
	w, player, camera, _ := newTestWorld(t, true)
	setDeltas(t, w, player, component.MouseDelta{DY: 40})

	NewLookSystem().Update(w)

	rig, ok := ecs.Get(w, camera, component.CameraRigKind)
	if !ok {
		t.Fatalf("camera has no rig")
	}
	want := float32(-40 * testSensitivity)
	if diff := rig.Pitch - want; diff < -1e-6 || diff > 1e-6 {
		t.Fatalf("expected pitch %v, got %v", want, rig.Pitch)
	}

	// dy must leave yaw alone.
	vec3ApproxEq(t, forward(t, w, player), mgl32.Vec3{0, 0, -1}, 1e-6)

	// Local rotation is assigned from the accumulator, not composed.
	wantRot := mgl32.QuatRotate(rig.Pitch, mgl32.Vec3{1, 0, 0})
	vec3ApproxEq(t, rig.LocalRotation.Rotate(mgl32.Vec3{0, 0, -1}), wantRot.Rotate(mgl32.Vec3{0, 0, -1}), 1e-6)
}

func TestLookPitchClamp(t *testing.T) {
	halfPi := float32(math.Pi / 2)

	cases := []struct {
		name   string
		deltas []component.MouseDelta
		want   float32
	}{
		{
			// Repeated dy summing to a -2.0 rad request clamps at -pi/2.
			name: "down_past_limit",
			deltas: []component.MouseDelta{
				{DY: 100}, {DY: 100}, {DY: 100}, {DY: 100},
			},
			want: -halfPi,
		},
		{
			name: "up_past_limit",
			deltas: []component.MouseDelta{
				{DY: -250}, {DY: -250},
			},
			want: halfPi,
		},
		{
			// A clamped fold must not bank overshoot: down past the limit
			// then back up ends above the limit.
			name: "no_overshoot_memory",
			deltas: []component.MouseDelta{
				{DY: 1000}, {DY: -100},
			},
			want: -halfPi + 100*testSensitivity,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, player, camera, _ := newTestWorld(t, true)
			setDeltas(t, w, player, c.deltas...)

			NewLookSystem().Update(w)

			rig, ok := ecs.Get(w, camera, component.CameraRigKind)
			if !ok {
				t.Fatalf("camera has no rig")
			}
			if rig.Pitch < -halfPi || rig.Pitch > halfPi {
				t.Fatalf("pitch %v escaped [-pi/2, pi/2]", rig.Pitch)
			}
			if diff := rig.Pitch - c.want; diff < -1e-4 || diff > 1e-4 {
				t.Fatalf("expected pitch %v, got %v", c.want, rig.Pitch)
			}
		})
	}
}

func TestLookEventsFoldInOrder(t *testing.T) {
	// Two half turns must land where one full turn does.
	w1, p1, _, _ := newTestWorld(t, true)
	setDeltas(t, w1, p1, component.MouseDelta{DX: 50}, component.MouseDelta{DX: 50})
	NewLookSystem().Update(w1)

	w2, p2, _, _ := newTestWorld(t, true)
	setDeltas(t, w2, p2, component.MouseDelta{DX: 100})
	NewLookSystem().Update(w2)

	vec3ApproxEq(t, forward(t, w1, p1), forward(t, w2, p2), 1e-5)
}

func TestLookGatedByCapture(t *testing.T) {
	w, player, camera, _ := newTestWorld(t, false)
	setDeltas(t, w, player, component.MouseDelta{DX: 100, DY: 100})

	NewLookSystem().Update(w)

	vec3ApproxEq(t, forward(t, w, player), mgl32.Vec3{0, 0, -1}, 1e-6)
	rig, ok := ecs.Get(w, camera, component.CameraRigKind)
	if !ok {
		t.Fatalf("camera has no rig")
	}
	if rig.Pitch != 0 {
		t.Fatalf("pitch changed while cursor free: %v", rig.Pitch)
	}
}

func TestLookNoDeltasIsNoop(t *testing.T) {
	w, player, _, _ := newTestWorld(t, true)

	NewLookSystem().Update(w)

	vec3ApproxEq(t, forward(t, w, player), mgl32.Vec3{0, 0, -1}, 1e-6)
}
