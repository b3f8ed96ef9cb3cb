package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Specs are authored with every physically meaningful field explicit; a
// missing speed or sensitivity is a load error, never a silent zero.

type Vec3Spec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

type PlayerSpec struct {
	Name               string   `yaml:"name"`
	WalkSpeed          float32  `yaml:"walk_speed"`
	FloatHeight        float32  `yaml:"float_height"`
	JumpHeight         float32  `yaml:"jump_height"`
	JumpShortenGravity float32  `yaml:"jump_shorten_gravity"`
	Radius             float32  `yaml:"radius"`
	Spawn              Vec3Spec `yaml:"spawn"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := loadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if spec.WalkSpeed <= 0 {
		return nil, fmt.Errorf("prefabs: player.yaml: walk_speed must be positive, got %v", spec.WalkSpeed)
	}
	if spec.FloatHeight <= 0 {
		return nil, fmt.Errorf("prefabs: player.yaml: float_height must be positive, got %v", spec.FloatHeight)
	}
	if spec.JumpHeight <= 0 {
		return nil, fmt.Errorf("prefabs: player.yaml: jump_height must be positive, got %v", spec.JumpHeight)
	}
	if spec.Radius <= 0 {
		return nil, fmt.Errorf("prefabs: player.yaml: radius must be positive, got %v", spec.Radius)
	}
	return spec, nil
}

type CameraSpec struct {
	Name        string   `yaml:"name"`
	Offset      Vec3Spec `yaml:"offset"`
	Sensitivity float32  `yaml:"sensitivity"`
	FOV         float32  `yaml:"fov"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := loadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Sensitivity <= 0 {
		return nil, fmt.Errorf("prefabs: camera.yaml: sensitivity must be positive, got %v", spec.Sensitivity)
	}
	if spec.FOV <= 0 {
		return nil, fmt.Errorf("prefabs: camera.yaml: fov must be positive, got %v", spec.FOV)
	}
	return spec, nil
}

// Escape key policies. Under EscapeToggle the escape key flips cursor
// capture and movement stays live while look is gated; under EscapeQuit the
// cursor is never released and escape exits the game.
const (
	EscapeToggle = "toggle"
	EscapeQuit   = "quit"
)

type ControlsSpec struct {
	EscapeAction string `yaml:"escape_action"`
}

func LoadControlsSpec() (*ControlsSpec, error) {
	spec, err := loadSpec[ControlsSpec]("controls.yaml")
	if err != nil {
		return nil, err
	}
	switch spec.EscapeAction {
	case EscapeToggle, EscapeQuit:
	case "":
		spec.EscapeAction = EscapeToggle
	default:
		return nil, fmt.Errorf("prefabs: controls.yaml: unknown escape_action %q", spec.EscapeAction)
	}
	return spec, nil
}

func loadSpec[T any](filename string) (*T, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return &spec, nil
}
