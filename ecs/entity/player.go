package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/firstperson/ecs"
	"github.com/milk9111/firstperson/ecs/component"
	"github.com/milk9111/firstperson/physics"
	"github.com/milk9111/firstperson/prefabs"
)

// NewPlayer builds the singleton player entity from the player prefab and
// registers its character body in the collision space. The capture flag
// starts captured.
func NewPlayer(w *ecs.World, space *physics.Space) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}

	body := physics.NewKinematicBody(space, spec.Spawn.X, spec.Spawn.Y, spec.Spawn.Z, spec.Radius)

	player := w.CreateEntity()
	if err := ecs.Add(w, player, component.PlayerTagKind, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	spawn := mgl32.Vec3{spec.Spawn.X, spec.Spawn.Y, spec.Spawn.Z}
	if err := ecs.Add(w, player, component.TransformKind, component.NewTransform(spawn)); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.InputKind, &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.CursorCaptureKind, &component.CursorCapture{Captured: true}); err != nil {
		return 0, fmt.Errorf("player: add cursor capture: %w", err)
	}
	if err := ecs.Add(w, player, component.LocomotionKind, &component.Locomotion{
		WalkSpeed:          spec.WalkSpeed,
		FloatHeight:        spec.FloatHeight,
		JumpHeight:         spec.JumpHeight,
		JumpShortenGravity: spec.JumpShortenGravity,
	}); err != nil {
		return 0, fmt.Errorf("player: add locomotion: %w", err)
	}
	if err := ecs.Add(w, player, component.CharacterBodyKind, &component.CharacterBody{
		Controller: body,
		Body:       body,
	}); err != nil {
		return 0, fmt.Errorf("player: add character body: %w", err)
	}

	return player, nil
}
