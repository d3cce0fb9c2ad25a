package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Quat is a quaternion laid out as {w, x, y, z}.
type Quat f32.Vec4

// QuatIdent returns the identity rotation.
func QuatIdent() Quat { return Quat{1, 0, 0, 0} }

// QuatAxisAngle returns rotation of angle radians about axis; axis must be unit length.
func QuatAxisAngle(angle float32, axis f32.Vec3) Quat {
	c, s := float32(math.Cos(float64(angle/2))), float32(math.Sin(float64(angle/2)))
	return Quat{c, axis[0] * s, axis[1] * s, axis[2] * s}
}

// QuatFromVectors returns the minimal rotation taking unit vector a onto unit
// vector b. Coincident vectors give the identity and opposite vectors give a
// half turn about an axis perpendicular to a.
func QuatFromVectors(a, b f32.Vec3) Quat {
	c := Cross3(a, b)
	d := clamp(Dot3(a, b), -1, 1)
	n := Len3(c)
	if n < epsilon {
		if d > 0 {
			return QuatIdent()
		}
		return QuatAxisAngle(math.Pi, Perp3(a))
	}
	angle := float32(math.Acos(float64(d)))
	return QuatAxisAngle(angle, Scale3(c, 1/n))
}

func (q Quat) W() float32 { return q[0] }

// Vec returns the vector part.
func (q Quat) Vec() f32.Vec3 { return f32.Vec3{q[1], q[2], q[3]} }

// Mul returns the Hamilton product q*r.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		q[0]*r[0] - q[1]*r[1] - q[2]*r[2] - q[3]*r[3],
		q[2]*r[3] - r[2]*q[3] + q[0]*r[1] + r[0]*q[1],
		r[1]*q[3] - q[1]*r[3] + q[0]*r[2] + r[0]*q[2],
		q[1]*r[2] - r[1]*q[2] + q[0]*r[3] + r[0]*q[3],
	}
}

// Rotated composes q onto r, applying r first and then q; the result is normalized.
func (q Quat) Rotated(r Quat) Quat { return q.Mul(r).Normalize() }

func (q Quat) Conj() Quat { return Quat{q[0], -q[1], -q[2], -q[3]} }

func (q Quat) Dot(r Quat) float32 { return q[0]*r[0] + q[1]*r[1] + q[2]*r[2] + q[3]*r[3] }

func (q Quat) Len() float32 { return sqrt(q.Dot(q)) }

// Normalize returns q scaled to unit length; the zero quaternion becomes the identity.
func (q Quat) Normalize() Quat {
	n := q.Len()
	if n == 0 {
		return QuatIdent()
	}
	return Quat{q[0] / n, q[1] / n, q[2] / n, q[3] / n}
}

// Angle returns the rotation angle in radians, in [0, 2π].
func (q Quat) Angle() float32 {
	return 2 * float32(math.Acos(float64(clamp(q[0], -1, 1))))
}

// Axis returns the unit rotation axis; the identity reports the zero vector.
func (q Quat) Axis() f32.Vec3 { return Norm3(q.Vec()) }

// IsIdent reports whether q represents no rotation. Both q and -q are the same rotation.
func (q Quat) IsIdent() bool {
	return Equals(abs(q[0]), 1) && Equals(q[1], 0) && Equals(q[2], 0) && Equals(q[3], 0)
}

// Rotate returns v rotated by unit quaternion q.
func (q Quat) Rotate(v f32.Vec3) f32.Vec3 {
	u := q.Vec()
	t := Scale3(Cross3(u, v), 2)
	return Add3(Add3(v, Scale3(t, q[0])), Cross3(u, t))
}

// Slerp interpolates along the shortest arc from q to r by t in [0, 1].
func (q Quat) Slerp(r Quat, t float32) Quat {
	d := q.Dot(r)
	if d < 0 {
		r, d = Quat{-r[0], -r[1], -r[2], -r[3]}, -d
	}
	if d > 1-epsilon {
		return Quat{
			q[0] + t*(r[0]-q[0]),
			q[1] + t*(r[1]-q[1]),
			q[2] + t*(r[2]-q[2]),
			q[3] + t*(r[3]-q[3]),
		}.Normalize()
	}
	theta := math.Acos(float64(d))
	sin := math.Sin(theta)
	a := float32(math.Sin((1-float64(t))*theta) / sin)
	b := float32(math.Sin(float64(t)*theta) / sin)
	return Quat{
		a*q[0] + b*r[0],
		a*q[1] + b*r[1],
		a*q[2] + b*r[2],
		a*q[3] + b*r[3],
	}
}

// Mat4 returns the column-major rotation matrix of unit quaternion q.
func (q Quat) Mat4() f32.Mat4 {
	w, x, y, z := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return f32.Mat4{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

func (q Quat) String() string {
	return fmt.Sprintf("Quat(%+.3f, %+.3f %+.3f %+.3f)", q[0], q[1], q[2], q[3])
}
