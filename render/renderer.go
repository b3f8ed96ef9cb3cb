// Package render draws the demo arena as a wireframe perspective projection.
// Scene authoring (meshes, materials, lighting) is out of scope for the
// movement core; this is just enough rendering to see the look and
// locomotion state move.
package render

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/firstperson/scene"
)

const nearPlane = float32(0.05)

var (
	gridColor = color.NRGBA{R: 0x3a, G: 0x5a, B: 0x3a, A: 0xff}
	propColor = color.NRGBA{R: 0xd8, G: 0xd8, B: 0xd8, A: 0xff}
)

// Renderer projects world-space line segments through the camera pose.
type Renderer struct {
	fov float32
}

func NewRenderer(fov float32) *Renderer {
	return &Renderer{fov: fov}
}

// Draw renders the ground grid and props from the camera's world pose.
func (r *Renderer) Draw(screen *ebiten.Image, camPos mgl32.Vec3, camRot mgl32.Quat, props []scene.Prop) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	focal := (h / 2) / math32.Tan(r.fov/2)
	invRot := camRot.Inverse()

	line := func(a, b mgl32.Vec3, c color.NRGBA) {
		va := invRot.Rotate(a.Sub(camPos))
		vb := invRot.Rotate(b.Sub(camPos))
		va, vb, ok := clipNear(va, vb)
		if !ok {
			return
		}
		ax := w/2 + va.X()*focal/-va.Z()
		ay := h/2 - va.Y()*focal/-va.Z()
		bx := w/2 + vb.X()*focal/-vb.Z()
		by := h/2 - vb.Y()*focal/-vb.Z()
		vector.StrokeLine(screen, ax, ay, bx, by, 1, c, true)
	}

	ext := scene.GroundExtent
	for i := -int(ext); i <= int(ext); i++ {
		f := float32(i)
		line(mgl32.Vec3{f, 0, -ext}, mgl32.Vec3{f, 0, ext}, gridColor)
		line(mgl32.Vec3{-ext, 0, f}, mgl32.Vec3{ext, 0, f}, gridColor)
	}

	for _, p := range props {
		drawBox(line, p)
	}
}

// drawBox emits the 12 edges of a prop's bounding box.
func drawBox(line func(a, b mgl32.Vec3, c color.NRGBA), p scene.Prop) {
	x0, x1 := p.X-p.Width/2, p.X+p.Width/2
	z0, z1 := p.Z-p.Depth/2, p.Z+p.Depth/2
	y0, y1 := float32(0), p.Height

	corners := [8]mgl32.Vec3{
		{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1},
		{x0, y1, z0}, {x1, y1, z0}, {x1, y1, z1}, {x0, y1, z1},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		line(corners[e[0]], corners[e[1]], propColor)
	}
}

// clipNear clips a view-space segment against the near plane (camera looks
// down -Z). Returns false when the whole segment is behind the camera.
func clipNear(a, b mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3, bool) {
	aBehind := a.Z() > -nearPlane
	bBehind := b.Z() > -nearPlane
	if aBehind && bBehind {
		return a, b, false
	}
	if !aBehind && !bBehind {
		return a, b, true
	}
	t := (-nearPlane - a.Z()) / (b.Z() - a.Z())
	hit := a.Add(b.Sub(a).Mul(t))
	if aBehind {
		return hit, b, true
	}
	return a, hit, true
}
