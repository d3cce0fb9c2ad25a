package surface

import (
	"errors"
	"image"
	"math"
	"testing"
	"testing/quick"

	"dasa.cc/shapeview/geom"

	"golang.org/x/image/math/f32"
)

func mustParametric(t *testing.T, s Shape, iv Interval) *Parametric {
	t.Helper()
	p, err := NewParametricIn(s, iv)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSphereCounts(t *testing.T) {
	p := mustParametric(t, Sphere{Radius: 1}, interval(4, 4, twoPi, pi))
	if have, want := p.VertexCount(), 16; have != want {
		t.Fatalf("VertexCount: have %v want %v", have, want)
	}
	if have, want := p.TriangleIndexCount(), 54; have != want {
		t.Fatalf("TriangleIndexCount: have %v want %v", have, want)
	}
	if have, want := p.LineIndexCount(), 36; have != want {
		t.Fatalf("LineIndexCount: have %v want %v", have, want)
	}
	if have, want := len(p.Vertices(FlagNormals)), 16*6; have != want {
		t.Fatalf("len(Vertices): have %v want %v", have, want)
	}
	if have, want := len(p.Vertices(0)), 16*3; have != want {
		t.Fatalf("len(Vertices): have %v want %v", have, want)
	}
	if have, want := len(p.TriangleIndices()), 54; have != want {
		t.Fatalf("len(TriangleIndices): have %v want %v", have, want)
	}
	if have, want := len(p.LineIndices()), 36; have != want {
		t.Fatalf("len(LineIndices): have %v want %v", have, want)
	}
}

func TestCountsQuick(t *testing.T) {
	f := func(a, b uint8) bool {
		div := image.Pt(int(a%40)+2, int(b%40)+2)
		p, err := NewParametricIn(Torus{1, 0.25}, interval(div.X, div.Y, twoPi, twoPi))
		if err != nil {
			return false
		}
		slices := div.Sub(image.Pt(1, 1))
		if p.VertexCount() != div.X*div.Y ||
			len(p.TriangleIndices()) != 6*slices.X*slices.Y ||
			len(p.LineIndices()) != 4*slices.X*slices.Y {
			return false
		}
		for _, i := range append(p.TriangleIndices(), p.LineIndices()...) {
			if int(i) >= p.VertexCount() {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultsIndicesInRange(t *testing.T) {
	for _, s := range Defaults() {
		p, err := NewParametric(s)
		if err != nil {
			t.Fatal(err)
		}
		n := p.VertexCount()
		for _, i := range p.TriangleIndices() {
			if int(i) >= n {
				t.Fatalf("%v: triangle index %v >= vertex count %v", s.Kind(), i, n)
			}
		}
		for _, i := range p.LineIndices() {
			if int(i) >= n {
				t.Fatalf("%v: line index %v >= vertex count %v", s.Kind(), i, n)
			}
		}
	}
}

func TestDefaultsNormalsUnit(t *testing.T) {
	for _, s := range Defaults() {
		p, err := NewParametric(s)
		if err != nil {
			t.Fatal(err)
		}
		vs := p.Vertices(FlagNormals)
		for i := 0; i < len(vs); i += 6 {
			n := f32.Vec3{vs[i+3], vs[i+4], vs[i+5]}
			l := geom.Len3(n)
			if math.IsNaN(float64(l)) || math.Abs(float64(l)-1) > 1e-3 {
				t.Fatalf("%v: vertex %v has normal %v of length %v", s.Kind(), i/6, n, l)
			}
		}
	}
}

func TestSphereNormalsOutward(t *testing.T) {
	p, err := NewParametric(Sphere{Radius: 1.4})
	if err != nil {
		t.Fatal(err)
	}
	vs := p.Vertices(FlagNormals)
	for i := 0; i < len(vs); i += 6 {
		pos := f32.Vec3{vs[i], vs[i+1], vs[i+2]}
		n := f32.Vec3{vs[i+3], vs[i+4], vs[i+5]}
		if d := geom.Dot3(geom.Norm3(pos), n); d < 0.9 {
			t.Fatalf("vertex %v: normal %v points away from %v, dot %v", i/6, n, pos, d)
		}
	}
}

// Tangents are taken with a wider step than the tessellator uses.
func TestDefaultsNormalsPerpendicular(t *testing.T) {
	const h = 0.05
	for _, s := range Defaults() {
		p, err := NewParametric(s)
		if err != nil {
			t.Fatal(err)
		}
		at := func(x, y float32) f32.Vec3 { return s.Evaluate(p.ComputeDomain(x, y)) }
		div := p.Interval().Divisions
		vs := p.Vertices(FlagNormals)
		for j := 1; j < div.Y-1; j++ {
			for i := 1; i < div.X-1; i++ {
				k := 6 * (j*div.X + i)
				n := f32.Vec3{vs[k+3], vs[k+4], vs[k+5]}
				x, y := float32(i), float32(j)
				du := geom.Norm3(geom.Sub3(at(x+h, y), at(x-h, y)))
				dv := geom.Norm3(geom.Sub3(at(x, y+h), at(x, y-h)))
				a, b := math.Abs(float64(geom.Dot3(n, du))), math.Abs(float64(geom.Dot3(n, dv)))
				if a > 1e-2 || b > 1e-2 {
					t.Fatalf("%v (%v, %v): normal %v against tangents %v %v, dot %.4f %.4f", s.Kind(), i, j, n, du, dv, a, b)
				}
			}
		}
	}
}

type plainKlein struct{ KleinBottle }

func (plainKlein) InvertNormal(f32.Vec2) bool { return false }

func TestKleinInvertNormal(t *testing.T) {
	k := KleinBottle{Scale: 0.2}
	a := mustParametric(t, k, k.Interval())
	b := mustParametric(t, plainKlein{k}, k.Interval())
	va, vb := a.Vertices(FlagNormals), b.Vertices(FlagNormals)

	div := k.Interval().Divisions
	var flipped int
	for j := 0; j < div.Y; j++ {
		for i := 0; i < div.X; i++ {
			o := 6 * (j*div.X + i)
			na := f32.Vec3{va[o+3], va[o+4], va[o+5]}
			nb := f32.Vec3{vb[o+3], vb[o+4], vb[o+5]}
			want := nb
			if k.InvertNormal(a.ComputeDomain(float32(i), float32(j))) {
				want = geom.Neg3(nb)
				flipped++
			}
			if !geom.Equals3(na, want) {
				t.Fatalf("(%v, %v): have %v want %v", i, j, na, want)
			}
		}
	}
	if flipped == 0 {
		t.Fatal("no normals inverted")
	}
}

func TestTorusSeam(t *testing.T) {
	p, err := NewParametric(Torus{Major: 1.4, Minor: 0.3})
	if err != nil {
		t.Fatal(err)
	}
	div := p.Interval().Divisions
	vs := p.Vertices(0)
	pos := func(i, j int) f32.Vec3 {
		o := 3 * (j*div.X + i)
		return f32.Vec3{vs[o], vs[o+1], vs[o+2]}
	}
	for j := 0; j < div.Y; j++ {
		if a, b := pos(0, j), pos(div.X-1, j); !geom.EqualsEps(geom.Len3(geom.Sub3(a, b)), 0, 1e-4) {
			t.Fatalf("row %v: seam open, %v != %v", j, a, b)
		}
	}

	// triangles touching a welded seam vertex match those around an interior vertex.
	adj := func(idx ...int) int {
		var n int
		tris := p.TriangleIndices()
		for k := 0; k < len(tris); k += 3 {
			for _, x := range tris[k : k+3] {
				if contains(idx, int(x)) {
					n++
					break
				}
			}
		}
		return n
	}
	j := div.Y / 2
	interior := adj(j*div.X + div.X/2)
	seam := adj(j*div.X, j*div.X+div.X-1)
	if interior != 6 || seam != interior {
		t.Fatalf("adjacency: interior %v seam %v", interior, seam)
	}
}

func contains(xs []int, x int) bool {
	for _, y := range xs {
		if x == y {
			return true
		}
	}
	return false
}

func TestTexCoords(t *testing.T) {
	iv := interval(5, 3, pi, twoPi)
	iv.TextureCount = f32.Vec2{2, 4}
	p := mustParametric(t, Sphere{Radius: 1}, iv)
	flags := FlagNormals | FlagTexCoords
	if have, want := flags.Stride(), 8; have != want {
		t.Fatalf("Stride: have %v want %v", have, want)
	}
	vs := p.Vertices(flags)
	if have, want := len(vs), 15*8; have != want {
		t.Fatalf("len(Vertices): have %v want %v", have, want)
	}
	first := f32.Vec2{vs[6], vs[7]}
	last := f32.Vec2{vs[len(vs)-2], vs[len(vs)-1]}
	if first != (f32.Vec2{0, 0}) {
		t.Fatalf("first texcoord: have %v", first)
	}
	if !geom.Equals(last[0], 2) || !geom.Equals(last[1], 4) {
		t.Fatalf("last texcoord: have %v want [2 4]", last)
	}
}

func TestIntervalValidate(t *testing.T) {
	if err := interval(1, 5, 1, 1).Validate(); !errors.Is(err, ErrDivisions) {
		t.Fatalf("have %v want %v", err, ErrDivisions)
	}
	if err := interval(300, 300, 1, 1).Validate(); !errors.Is(err, ErrTooManyVertices) {
		t.Fatalf("have %v want %v", err, ErrTooManyVertices)
	}
	if err := interval(256, 256, 1, 1).Validate(); err != nil {
		t.Fatal(err)
	}
	if _, err := NewParametricIn(Sphere{1}, interval(2, 0, 1, 1)); !errors.Is(err, ErrDivisions) {
		t.Fatalf("have %v want %v", err, ErrDivisions)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		have, err := ParseKind(k.String())
		if err != nil {
			t.Fatal(err)
		}
		if have != k {
			t.Fatalf("have %v want %v", have, k)
		}
		if New(k).Kind() != k {
			t.Fatalf("New(%v).Kind() = %v", k, New(k).Kind())
		}
	}
	if k, err := ParseKind(" Torus "); err != nil || k != KindTorus {
		t.Fatalf("have %v, %v", k, err)
	}
	if _, err := ParseKind("teapot"); err == nil {
		t.Fatal("expected error for unknown shape")
	}
	if have, want := Kind(42).String(), "Kind(42)"; have != want {
		t.Fatalf("have %q want %q", have, want)
	}
}
