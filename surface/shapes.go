package surface

import (
	"fmt"
	"image"
	"math"
	"strings"

	"dasa.cc/shapeview/geom"

	"golang.org/x/image/math/f32"
)

const (
	pi    = math.Pi
	twoPi = 2 * math.Pi
)

// Kind identifies one of the built-in parametric shapes.
type Kind int

const (
	KindCone Kind = iota
	KindSphere
	KindTorus
	KindTrefoilKnot
	KindKleinBottle
	KindMobiusStrip
	kindCount
)

var kindNames = [kindCount]string{
	KindCone:        "cone",
	KindSphere:      "sphere",
	KindTorus:       "torus",
	KindTrefoilKnot: "trefoil",
	KindKleinBottle: "klein",
	KindMobiusStrip: "mobius",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns all shape kinds in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, kindCount)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// ParseKind returns the kind named s, case insensitive.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if s == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("surface: unknown shape %q", s)
}

// Shape is a parametric function from a 2D domain to 3D positions.
// The set of shapes is closed; see Kind.
type Shape interface {
	Kind() Kind
	Interval() Interval
	Evaluate(domain f32.Vec2) f32.Vec3
	InvertNormal(domain f32.Vec2) bool
	shape()
}

// New returns the default shape of kind k.
func New(k Kind) Shape {
	switch k {
	case KindCone:
		return Cone{Height: 3, Radius: 1}
	case KindSphere:
		return Sphere{Radius: 1.4}
	case KindTorus:
		return Torus{Major: 1.4, Minor: 0.3}
	case KindTrefoilKnot:
		return TrefoilKnot{Scale: 1.8}
	case KindKleinBottle:
		return KleinBottle{Scale: 0.2}
	case KindMobiusStrip:
		return MobiusStrip{Scale: 1}
	}
	panic(fmt.Errorf("surface: unknown shape %v", k))
}

// Defaults returns one default shape of every kind.
func Defaults() []Shape {
	var shapes []Shape
	for _, k := range Kinds() {
		shapes = append(shapes, New(k))
	}
	return shapes
}

func interval(dx, dy int, ux, uy float32) Interval {
	return Interval{
		Divisions:    image.Pt(dx, dy),
		UpperBound:   f32.Vec2{ux, uy},
		TextureCount: f32.Vec2{1, 1},
	}
}

func sin(x float32) float32 { return float32(math.Sin(float64(x))) }
func cos(x float32) float32 { return float32(math.Cos(float64(x))) }

type Cone struct{ Height, Radius float32 }

func (Cone) Kind() Kind                 { return KindCone }
func (Cone) Interval() Interval         { return interval(20, 20, twoPi, 1) }
func (Cone) InvertNormal(f32.Vec2) bool { return false }
func (Cone) shape()                     {}

func (c Cone) Evaluate(d f32.Vec2) f32.Vec3 {
	u, v := d[0], d[1]
	return f32.Vec3{
		c.Radius * (1 - v) * cos(u),
		c.Height * (v - 0.5),
		c.Radius * (1 - v) * -sin(u),
	}
}

type Sphere struct{ Radius float32 }

func (Sphere) Kind() Kind                 { return KindSphere }
func (Sphere) Interval() Interval         { return interval(20, 20, pi, twoPi) }
func (Sphere) InvertNormal(f32.Vec2) bool { return false }
func (Sphere) shape()                     {}

func (s Sphere) Evaluate(d f32.Vec2) f32.Vec3 {
	u, v := d[0], d[1]
	return f32.Vec3{
		s.Radius * sin(u) * cos(v),
		s.Radius * cos(u),
		s.Radius * -sin(u) * sin(v),
	}
}

type Torus struct{ Major, Minor float32 }

func (Torus) Kind() Kind                 { return KindTorus }
func (Torus) Interval() Interval         { return interval(20, 20, twoPi, twoPi) }
func (Torus) InvertNormal(f32.Vec2) bool { return false }
func (Torus) shape()                     {}

func (t Torus) Evaluate(d f32.Vec2) f32.Vec3 {
	u, v := d[0], d[1]
	r := t.Major + t.Minor*cos(v)
	return f32.Vec3{
		r * cos(u),
		r * sin(u),
		t.Minor * sin(v),
	}
}

type TrefoilKnot struct{ Scale float32 }

func (TrefoilKnot) Kind() Kind                 { return KindTrefoilKnot }
func (TrefoilKnot) Interval() Interval         { return interval(60, 15, twoPi, twoPi) }
func (TrefoilKnot) InvertNormal(f32.Vec2) bool { return false }
func (TrefoilKnot) shape()                     {}

// Evaluate sweeps a small circle along the knot curve, oriented by the
// curve tangent.
func (k TrefoilKnot) Evaluate(d f32.Vec2) f32.Vec3 {
	const (
		a = 0.5
		b = 0.3
		c = 0.5
		w = 0.1
	)
	u := (twoPi - d[0]) * 2
	v := d[1]

	r := a + b*cos(1.5*u)
	x := r * cos(u)
	y := r * sin(u)
	z := c * sin(1.5*u)

	dv := f32.Vec3{
		-1.5*b*sin(1.5*u)*cos(u) - r*sin(u),
		-1.5*b*sin(1.5*u)*sin(u) + r*cos(u),
		1.5 * c * cos(1.5*u),
	}
	q := geom.Norm3(dv)
	qvn := geom.Norm3(f32.Vec3{q[1], -q[0], 0})
	ww := geom.Cross3(q, qvn)

	p := f32.Vec3{x, y, z}
	p = geom.Add3(p, geom.Scale3(qvn, w*cos(v)))
	p = geom.Add3(p, geom.Scale3(ww, w*sin(v)))
	return geom.Scale3(p, k.Scale)
}

type KleinBottle struct{ Scale float32 }

func (KleinBottle) Kind() Kind         { return KindKleinBottle }
func (KleinBottle) Interval() Interval { return interval(20, 20, twoPi, twoPi) }
func (KleinBottle) shape()             {}

// InvertNormal flips the last quarter of the tube so normals stay outward
// where the bottle passes through itself.
func (KleinBottle) InvertNormal(d f32.Vec2) bool { return d[1] > 3*pi/2 }

func (k KleinBottle) Evaluate(d f32.Vec2) f32.Vec3 {
	u, v := d[0], d[1]
	w := 2 * (1 - cos(u)/2)

	x0 := 3*cos(u)*(1+sin(u)) + w*cos(u)*cos(v)
	y0 := 8*sin(u) + w*sin(u)*cos(v)
	x1 := 3*cos(u)*(1+sin(u)) + w*cos(v+pi)
	y1 := 8 * sin(u)

	p := f32.Vec3{x1, -y1, -w * sin(v)}
	if u < pi {
		p[0], p[1] = x0, -y0
	}
	return geom.Scale3(p, k.Scale)
}

type MobiusStrip struct{ Scale float32 }

func (MobiusStrip) Kind() Kind                 { return KindMobiusStrip }
func (MobiusStrip) Interval() Interval         { return interval(40, 20, twoPi, twoPi) }
func (MobiusStrip) InvertNormal(f32.Vec2) bool { return false }
func (MobiusStrip) shape()                     {}

// Evaluate sweeps an ellipse, turning half a revolution, around a circle.
func (m MobiusStrip) Evaluate(d f32.Vec2) f32.Vec3 {
	const (
		major = 1.25
		a     = 0.125
		b     = 0.5
	)
	u, t := d[0], d[1]
	phi := u / 2
	x := a*cos(t)*cos(phi) - b*sin(t)*sin(phi)
	y := a*cos(t)*sin(phi) + b*sin(t)*cos(phi)
	return geom.Scale3(f32.Vec3{
		(major + x) * cos(u),
		(major + x) * sin(u),
		y,
	}, m.Scale)
}
