package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeOrZero normalizes v, mapping the zero vector to itself instead of
// NaN. Opposite held keys cancel to a zero direction, so this case is hit
// whenever no net movement is requested.
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	lenSq := v.LenSqr()
	if lenSq == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / math32.Sqrt(lenSq))
}
