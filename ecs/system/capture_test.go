package system

import (
	"testing"

	"github.com/milk9111/firstperson/ecs"
	"github.com/milk9111/firstperson/ecs/component"
)

func setToggle(t *testing.T, w *ecs.World, player ecs.Entity, pressed bool) {
	t.Helper()
	input, ok := ecs.Get(w, player, component.InputKind)
	if !ok {
		t.Fatalf("player has no input component")
	}
	input.TogglePressed = pressed
}

func captured(t *testing.T, w *ecs.World) bool {
	t.Helper()
	_, capture := ecs.Single(w, component.CursorCaptureKind)
	return capture.Captured
}

func TestCaptureInitialApply(t *testing.T) {
	w, _, _, _ := newTestWorld(t, true)
	cursor := &fakeCursor{}
	sys := NewCaptureSystem(cursor, false)

	// The startup state reaches the cursor exactly once.
	sys.Update(w)
	sys.Update(w)
	sys.Update(w)

	if len(cursor.calls) != 1 || cursor.calls[0] != true {
		t.Fatalf("expected a single initial capture call, got %v", cursor.calls)
	}
}

func TestCaptureToggle(t *testing.T) {
	w, player, _, _ := newTestWorld(t, true)
	cursor := &fakeCursor{}
	sys := NewCaptureSystem(cursor, false)

	sys.Update(w) // initial apply

	setToggle(t, w, player, true)
	sys.Update(w)
	setToggle(t, w, player, false)
	if captured(t, w) {
		t.Fatalf("first toggle should release capture")
	}

	sys.Update(w)
	if captured(t, w) {
		t.Fatalf("no-edge frames must not toggle")
	}

	setToggle(t, w, player, true)
	sys.Update(w)
	setToggle(t, w, player, false)
	if !captured(t, w) {
		t.Fatalf("second toggle should restore capture")
	}

	evts := w.Events().Drain()
	if len(evts) != 2 {
		t.Fatalf("expected 2 capture-changed events, got %+v", evts)
	}
	for _, evt := range evts {
		if evt.Type != ecs.EventCaptureChanged {
			t.Fatalf("unexpected event type %q", evt.Type)
		}
	}
}

func TestCaptureDoubleToggleRestoresCursor(t *testing.T) {
	w, player, _, _ := newTestWorld(t, true)
	cursor := &fakeCursor{}
	sys := NewCaptureSystem(cursor, false)
	sys.Update(w)

	setToggle(t, w, player, true)
	sys.Update(w)
	setToggle(t, w, player, false)
	sys.Update(w)
	setToggle(t, w, player, true)
	sys.Update(w)

	// Two edges restore both the flag and the cursor's last-applied state;
	// no redundant calls in between.
	want := []bool{true, false, true}
	if len(cursor.calls) != len(want) {
		t.Fatalf("expected cursor calls %v, got %v", want, cursor.calls)
	}
	for i := range want {
		if cursor.calls[i] != want[i] {
			t.Fatalf("expected cursor calls %v, got %v", want, cursor.calls)
		}
	}
	if !captured(t, w) {
		t.Fatalf("double toggle should restore the original mode")
	}
}

func TestCaptureQuitPolicy(t *testing.T) {
	w, player, _, _ := newTestWorld(t, true)
	cursor := &fakeCursor{}
	sys := NewCaptureSystem(cursor, true)
	sys.Update(w)

	setToggle(t, w, player, true)
	sys.Update(w)

	if !captured(t, w) {
		t.Fatalf("quit policy must not release capture")
	}
	evts := w.Events().Drain()
	if len(evts) != 1 || evts[0].Type != ecs.EventQuit {
		t.Fatalf("expected a quit event, got %+v", evts)
	}
	if len(cursor.calls) != 1 {
		t.Fatalf("quit policy should make no cursor call beyond the initial apply, got %v", cursor.calls)
	}
}

func TestCaptureNilCursor(t *testing.T) {
	// Headless worlds run without a windowing collaborator.
	w, player, _, _ := newTestWorld(t, true)
	sys := NewCaptureSystem(nil, false)
	sys.Update(w)

	setToggle(t, w, player, true)
	sys.Update(w)

	if captured(t, w) {
		t.Fatalf("toggle should flip the flag even without a cursor")
	}
}
