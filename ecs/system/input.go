package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/firstperson/ecs"
	"github.com/milk9111/firstperson/ecs/component"
)

// InputSystem snapshots keyboard and pointer state into the Input component
// at the start of every frame. It runs before everything else; the rest of
// the frame reads the snapshot and never touches ebiten directly.
type InputSystem struct {
	toggleKey ebiten.Key

	prevX, prevY int
	tracking     bool
}

func NewInputSystem(toggleKey ebiten.Key) *InputSystem {
	return &InputSystem{toggleKey: toggleKey}
}

func (s *InputSystem) Update(w *ecs.World) {
	// Ebiten reports an absolute cursor position rather than motion events;
	// in captured mode the position keeps accumulating past the window
	// bounds, so the frame's delta is the position difference.
	x, y := ebiten.CursorPosition()
	var dx, dy float32
	if s.tracking {
		dx = float32(x - s.prevX)
		dy = float32(y - s.prevY)
	}
	s.prevX, s.prevY = x, y
	s.tracking = true

	forward := ebiten.IsKeyPressed(ebiten.KeyW)
	back := ebiten.IsKeyPressed(ebiten.KeyS)
	left := ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyD)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace)
	toggle := inpututil.IsKeyJustPressed(s.toggleKey)

	ecs.ForEach(w, component.InputKind, func(_ ecs.Entity, input *component.Input) {
		input.Forward = forward
		input.Back = back
		input.Left = left
		input.Right = right
		input.Jump = jump
		input.TogglePressed = toggle
		input.Deltas = input.Deltas[:0]
		if dx != 0 || dy != 0 {
			input.Deltas = append(input.Deltas, component.MouseDelta{DX: dx, DY: dy})
		}
	})
}
