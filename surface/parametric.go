package surface

import (
	"fmt"
	"image"

	"dasa.cc/shapeview/geom"

	"golang.org/x/image/math/f32"
)

// Interval is the sampled domain of a parametric shape. The domain spans
// from (0, 0) to UpperBound and is sampled Divisions times along each axis.
type Interval struct {
	Divisions    image.Point
	UpperBound   f32.Vec2
	TextureCount f32.Vec2
}

// Validate reports whether the interval can be tessellated.
func (iv Interval) Validate() error {
	if iv.Divisions.X < 2 || iv.Divisions.Y < 2 {
		return fmt.Errorf("%w: have %v", ErrDivisions, iv.Divisions)
	}
	if n := iv.Divisions.X * iv.Divisions.Y; n > MaxVertices {
		return fmt.Errorf("%w: have %v", ErrTooManyVertices, n)
	}
	return nil
}

// Slices returns the number of grid cells along each axis.
func (iv Interval) Slices() image.Point { return iv.Divisions.Sub(image.Pt(1, 1)) }

// nudge is the finite difference step and boundary offset, in grid units.
const nudge = 0.01

// Parametric tessellates a Shape over its Interval.
type Parametric struct {
	shape    Shape
	interval Interval
	slices   image.Point
}

var _ Surface = (*Parametric)(nil)

// NewParametric tessellates shape over its natural interval.
func NewParametric(shape Shape) (*Parametric, error) {
	return NewParametricIn(shape, shape.Interval())
}

// NewParametricIn tessellates shape over interval iv.
func NewParametricIn(shape Shape, iv Interval) (*Parametric, error) {
	if err := iv.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", shape.Kind(), err)
	}
	if iv.TextureCount == (f32.Vec2{}) {
		iv.TextureCount = f32.Vec2{1, 1}
	}
	return &Parametric{shape: shape, interval: iv, slices: iv.Slices()}, nil
}

func (p *Parametric) Shape() Shape       { return p.shape }
func (p *Parametric) Interval() Interval { return p.interval }

func (p *Parametric) VertexCount() int { return p.interval.Divisions.X * p.interval.Divisions.Y }

func (p *Parametric) LineIndexCount() int { return 4 * p.slices.X * p.slices.Y }

func (p *Parametric) TriangleIndexCount() int { return 6 * p.slices.X * p.slices.Y }

// ComputeDomain maps grid coordinates to the parametric domain.
func (p *Parametric) ComputeDomain(x, y float32) f32.Vec2 {
	ub := p.interval.UpperBound
	return f32.Vec2{
		x * ub[0] / float32(p.slices.X),
		y * ub[1] / float32(p.slices.Y),
	}
}

func (p *Parametric) Vertices(flags VertexFlags) []float32 {
	var (
		div      = p.interval.Divisions
		stride   = flags.Stride()
		vertices = make([]float32, p.VertexCount()*stride)
		k        int
	)
	for j := 0; j < div.Y; j++ {
		for i := 0; i < div.X; i++ {
			domain := p.ComputeDomain(float32(i), float32(j))
			pos := p.shape.Evaluate(domain)
			k += copy(vertices[k:], pos[:])

			if flags.Has(FlagNormals) {
				n := p.normal(i, j, domain)
				k += copy(vertices[k:], n[:])
			}

			if flags.Has(FlagTexCoords) {
				ub, tc := p.interval.UpperBound, p.interval.TextureCount
				vertices[k+0] = tc[0] * domain[0] / ub[0]
				vertices[k+1] = tc[1] * domain[1] / ub[1]
				k += 2
			}
		}
	}
	return vertices
}

// normal estimates the surface normal at grid point (i, j) by central
// differences. Boundary points are moved inward by nudge so every sample
// stays inside the domain.
func (p *Parametric) normal(i, j int, domain f32.Vec2) f32.Vec3 {
	div := p.interval.Divisions
	s, t := float32(i), float32(j)
	if i == 0 {
		s += nudge
	}
	if i == div.X-1 {
		s -= nudge
	}
	if j == 0 {
		t += nudge
	}
	if j == div.Y-1 {
		t -= nudge
	}

	at := func(x, y float32) f32.Vec3 { return p.shape.Evaluate(p.ComputeDomain(x, y)) }
	u := geom.Sub3(at(s+nudge, t), at(s-nudge, t))
	v := geom.Sub3(at(s, t+nudge), at(s, t-nudge))

	n := geom.Norm3(geom.Cross3(u, v))
	if p.shape.InvertNormal(domain) {
		n = geom.Neg3(n)
	}
	return n
}

func (p *Parametric) LineIndices() []uint16 {
	var (
		div     = p.interval.Divisions
		indices = make([]uint16, p.LineIndexCount())
		k       int
	)
	for j, vertex := 0, 0; j < p.slices.Y; j++ {
		for i := 0; i < p.slices.X; i++ {
			indices[k+0] = uint16(vertex + i)
			indices[k+1] = uint16(vertex + i + 1)
			indices[k+2] = uint16(vertex + i)
			indices[k+3] = uint16(vertex + i + div.X)
			k += 4
		}
		vertex += div.X
	}
	return indices
}

func (p *Parametric) TriangleIndices() []uint16 {
	var (
		div     = p.interval.Divisions
		indices = make([]uint16, p.TriangleIndexCount())
		k       int
	)
	for j, vertex := 0, 0; j < p.slices.Y; j++ {
		for i := 0; i < p.slices.X; i++ {
			next := (i + 1) % div.X
			indices[k+0] = uint16(vertex + i)
			indices[k+1] = uint16(vertex + next)
			indices[k+2] = uint16(vertex + i + div.X)
			indices[k+3] = uint16(vertex + next)
			indices[k+4] = uint16(vertex + next + div.X)
			indices[k+5] = uint16(vertex + i + div.X)
			k += 6
		}
		vertex += div.X
	}
	return indices
}
