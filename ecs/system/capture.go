package system

import (
	"github.com/milk9111/firstperson/ecs"
	"github.com/milk9111/firstperson/ecs/component"
)

// Cursor is the windowing collaborator that confines and hides the OS
// pointer while input is captured.
type Cursor interface {
	SetCaptured(captured bool)
}

// CaptureSystem owns the capture-mode flag transition. The cursor
// collaborator is called only when the flag actually changes, plus once at
// startup to apply the initial state; every other frame makes no OS call.
//
// With quitOnToggle set (the "unlocked" control scheme), the toggle key
// requests shutdown instead of flipping capture.
type CaptureSystem struct {
	cursor       Cursor
	quitOnToggle bool
	applied      bool
}

func NewCaptureSystem(cursor Cursor, quitOnToggle bool) *CaptureSystem {
	return &CaptureSystem{cursor: cursor, quitOnToggle: quitOnToggle}
}

func (s *CaptureSystem) Update(w *ecs.World) {
	e, capture := ecs.Single(w, component.CursorCaptureKind)

	if !s.applied {
		s.applied = true
		if s.cursor != nil {
			s.cursor.SetCaptured(capture.Captured)
		}
	}

	input, ok := ecs.Get(w, e, component.InputKind)
	if !ok || !input.TogglePressed {
		return
	}

	if s.quitOnToggle {
		w.Events().Push(ecs.Event{Type: ecs.EventQuit})
		return
	}

	capture.Captured = !capture.Captured
	if s.cursor != nil {
		s.cursor.SetCaptured(capture.Captured)
	}
	w.Events().Push(ecs.Event{Type: ecs.EventCaptureChanged, Data: capture.Captured})
}
