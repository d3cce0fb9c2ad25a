// Package geom provides f32 vector and unit quaternion primitives for
// rotating shapes on screen.
package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

const epsilon = 0.0001

// Equals reports whether a and b are within epsilon of each other.
func Equals(a, b float32) bool { return EqualsEps(a, b, epsilon) }

func EqualsEps(a, b float32, eps float32) bool {
	return (a-b) < eps && (b-a) < eps
}

func Equals3(a, b f32.Vec3) bool {
	return Equals(a[0], b[0]) && Equals(a[1], b[1]) && Equals(a[2], b[2])
}

func Vec2(v0, v1 float32) f32.Vec2     { return f32.Vec2{v0, v1} }
func Vec3(v0, v1, v2 float32) f32.Vec3 { return f32.Vec3{v0, v1, v2} }

func Add3(a, b f32.Vec3) f32.Vec3 { return f32.Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func Sub3(a, b f32.Vec3) f32.Vec3 { return f32.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func Scale3(a f32.Vec3, s float32) f32.Vec3 { return f32.Vec3{a[0] * s, a[1] * s, a[2] * s} }

func Neg3(a f32.Vec3) f32.Vec3 { return f32.Vec3{-a[0], -a[1], -a[2]} }

func Dot3(a, b f32.Vec3) float32 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func Cross3(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func Len3(a f32.Vec3) float32 { return sqrt(Dot3(a, a)) }

// Norm3 returns a scaled to unit length; the zero vector is returned as is.
func Norm3(a f32.Vec3) f32.Vec3 {
	n := Len3(a)
	if n == 0 {
		return a
	}
	return Scale3(a, 1/n)
}

func Lerp3(a, b f32.Vec3, t float32) f32.Vec3 {
	return f32.Vec3{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
	}
}

// Perp3 returns a unit vector perpendicular to a.
func Perp3(a f32.Vec3) f32.Vec3 {
	// cross with whichever basis vector is least aligned with a.
	x, y, z := abs(a[0]), abs(a[1]), abs(a[2])
	var e f32.Vec3
	switch {
	case x <= y && x <= z:
		e = f32.Vec3{1, 0, 0}
	case y <= z:
		e = f32.Vec3{0, 1, 0}
	default:
		e = f32.Vec3{0, 0, 1}
	}
	return Norm3(Cross3(a, e))
}

func String3(a f32.Vec3) string { return fmt.Sprintf("(%+.3f %+.3f %+.3f)", a[0], a[1], a[2]) }

func sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
