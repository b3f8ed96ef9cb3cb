// Package scene builds the demo arena: a flat ground plane plus static props
// laid out by an embedded tengo script, so the arena can be reshaped without
// recompiling.
package scene

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/firstperson/physics"
	"github.com/milk9111/firstperson/prefabs"
)

// GroundExtent is the half-size of the walkable ground plane.
const GroundExtent = float32(10.0)

// Prop is an axis-aligned static obstacle footprint with a render height.
type Prop struct {
	X      float32
	Z      float32
	Width  float32
	Depth  float32
	Height float32
}

// LoadProps runs the scene layout script and returns its props. The script
// assigns a top-level `props` array of [x, z, width, depth, height] rows.
func LoadProps(name string) ([]Prop, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("scene: load script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("scene: run script %s: %w", name, err)
	}

	rows := compiled.Get("props").Array()
	if rows == nil {
		return nil, fmt.Errorf("scene: script %s did not produce a props array", name)
	}

	props := make([]Prop, 0, len(rows))
	for i, row := range rows {
		fields, ok := row.([]interface{})
		if !ok || len(fields) != 5 {
			return nil, fmt.Errorf("scene: script %s: props[%d] is not a 5-element row", name, i)
		}
		vals := make([]float32, 5)
		for j, f := range fields {
			v, err := toFloat32(f)
			if err != nil {
				return nil, fmt.Errorf("scene: script %s: props[%d][%d]: %w", name, i, j, err)
			}
			vals[j] = v
		}
		props = append(props, Prop{X: vals[0], Z: vals[1], Width: vals[2], Depth: vals[3], Height: vals[4]})
	}
	return props, nil
}

// Build registers the ground boundary and every prop footprint in the
// collision space.
func Build(space *physics.Space, props []Prop) {
	// Walls at the ground's edge keep the player on the plane; the original
	// demo simply let you walk off, but falling forever makes a poor demo.
	const wallThickness = float32(1.0)
	edge := GroundExtent + wallThickness/2
	span := 2 * (GroundExtent + wallThickness)
	space.AddStaticBox(0, -edge, span, wallThickness)
	space.AddStaticBox(0, edge, span, wallThickness)
	space.AddStaticBox(-edge, 0, wallThickness, span)
	space.AddStaticBox(edge, 0, wallThickness, span)

	for _, p := range props {
		space.AddStaticBox(p.X, p.Z, p.Width, p.Depth)
	}
}

func toFloat32(v interface{}) (float32, error) {
	switch n := v.(type) {
	case float64:
		return float32(n), nil
	case int64:
		return float32(n), nil
	case int:
		return float32(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}
