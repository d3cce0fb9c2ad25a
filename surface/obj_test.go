package surface

import (
	"errors"
	"strings"
	"testing"

	"dasa.cc/shapeview/geom"

	"golang.org/x/image/math/f32"
)

const tetrahedron = `# tetrahedron
o tetra
mtllib tetra.mtl
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
vn 0 0 1

usemtl none
s off
f 1 3 2
f 1/1 2/2 4/4
f 1//1 4//1 3//1
f 2/1/1 3/1/1 4/1/1
`

func TestLoadObj(t *testing.T) {
	m, err := LoadObj(strings.NewReader(tetrahedron))
	if err != nil {
		t.Fatal(err)
	}
	if have, want := m.VertexCount(), 4; have != want {
		t.Fatalf("VertexCount: have %v want %v", have, want)
	}
	if have, want := m.TriangleIndexCount(), 12; have != want {
		t.Fatalf("TriangleIndexCount: have %v want %v", have, want)
	}
	if m.LineIndexCount() != 0 || len(m.LineIndices()) != 0 {
		t.Fatal("mesh has line indices")
	}
	want := []uint16{0, 2, 1, 0, 1, 3, 0, 3, 2, 1, 2, 3}
	for i, x := range m.TriangleIndices() {
		if x != want[i] {
			t.Fatalf("TriangleIndices: have %v want %v", m.TriangleIndices(), want)
		}
	}
	vs := m.Vertices(FlagNormals)
	if have, want := len(vs), 4*6; have != want {
		t.Fatalf("len(Vertices): have %v want %v", have, want)
	}
	for i := 0; i < len(vs); i += 6 {
		n := f32.Vec3{vs[i+3], vs[i+4], vs[i+5]}
		if !geom.Equals(geom.Len3(n), 1) {
			t.Fatalf("vertex %v: normal %v not unit length", i/6, n)
		}
	}
	if have, want := len(m.Vertices(FlagNormals|FlagTexCoords)), 4*8; have != want {
		t.Fatalf("len(Vertices) with texcoords: have %v want %v", have, want)
	}
}

func TestLoadObjNormals(t *testing.T) {
	m, err := LoadObj(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	vs := m.Vertices(FlagNormals)
	for i := 0; i < len(vs); i += 6 {
		if n := (f32.Vec3{vs[i+3], vs[i+4], vs[i+5]}); !geom.Equals3(n, f32.Vec3{0, 0, 1}) {
			t.Fatalf("vertex %v: have normal %v want [0 0 1]", i/6, n)
		}
	}
}

func TestLoadObjErrors(t *testing.T) {
	tests := []struct {
		name, src, line string
	}{
		{"bad float", "v 0 0 0\nv 1 x 0\n", "line 2"},
		{"short vertex", "v 0 0\n", "line 1"},
		{"quad", "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\nf 1 2 3 4\n", "line 5"},
		{"out of range", "v 0 0 0\nv 1 0 0\n\nf 1 2 3\n", "line 4"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", "line 4"},
		{"bad index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 b 2\n", "line 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := LoadObj(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if m != nil {
				t.Fatal("partial mesh returned")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("have %v want %v", err, ErrMalformed)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Fatalf("error %q does not name %q", err, tt.line)
			}
		})
	}
}
