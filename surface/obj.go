package surface

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dasa.cc/shapeview/geom"

	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/asset"
)

var ErrMalformed = errors.New("surface: malformed obj")

// Mesh is a triangle mesh read from a Wavefront OBJ file. Meshes have no
// line indices and no texture coordinates.
type Mesh struct {
	positions []f32.Vec3
	normals   []f32.Vec3
	faces     [][3]uint16
}

var _ Surface = (*Mesh)(nil)

// OpenObj loads the named OBJ file from the application's assets.
func OpenObj(name string) (*Mesh, error) {
	f, err := asset.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := LoadObj(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

// LoadObj reads vertex and face records from r. Other record types are
// skipped. Any malformed record fails the whole load.
func LoadObj(r io.Reader) (*Mesh, error) {
	m := new(Mesh)
	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		var err error
		switch fields[0] {
		case "v":
			err = m.parseVertex(fields[1:])
		case "f":
			err = m.parseFace(fields[1:])
		}
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", ln, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(m.positions) > MaxVertices {
		return nil, fmt.Errorf("%w: have %v", ErrTooManyVertices, len(m.positions))
	}
	m.computeNormals()
	return m, nil
}

func (m *Mesh) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: vertex needs 3 coordinates, have %v", ErrMalformed, len(fields))
	}
	var v f32.Vec3
	for i := range v {
		x, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		v[i] = float32(x)
	}
	m.positions = append(m.positions, v)
	return nil
}

// parseFace accepts "a b c" and the slash forms "a/t/n", "a//n", "a/t".
// Indices are 1-based and must refer to a vertex already read.
func (m *Mesh) parseFace(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: face needs 3 vertices, have %v", ErrMalformed, len(fields))
	}
	var f [3]uint16
	for i, s := range fields {
		if j := strings.IndexByte(s, '/'); j >= 0 {
			s = s[:j]
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if n < 1 || n > len(m.positions) || n > MaxVertices {
			return fmt.Errorf("%w: face index %v out of range [1, %v]", ErrMalformed, n, len(m.positions))
		}
		f[i] = uint16(n - 1)
	}
	m.faces = append(m.faces, f)
	return nil
}

func (m *Mesh) computeNormals() {
	m.normals = make([]f32.Vec3, len(m.positions))
	for _, f := range m.faces {
		a, b, c := m.positions[f[0]], m.positions[f[1]], m.positions[f[2]]
		n := geom.Cross3(geom.Sub3(b, a), geom.Sub3(c, a))
		for _, i := range f {
			m.normals[i] = geom.Add3(m.normals[i], n)
		}
	}
	for i, n := range m.normals {
		m.normals[i] = geom.Norm3(n)
	}
}

func (m *Mesh) FaceCount() int          { return len(m.faces) }
func (m *Mesh) VertexCount() int        { return len(m.positions) }
func (m *Mesh) LineIndexCount() int     { return 0 }
func (m *Mesh) TriangleIndexCount() int { return 3 * len(m.faces) }
func (m *Mesh) LineIndices() []uint16   { return nil }

// Vertices writes zeros for texture coordinates when FlagTexCoords is set.
func (m *Mesh) Vertices(flags VertexFlags) []float32 {
	vertices := make([]float32, 0, len(m.positions)*flags.Stride())
	for i, p := range m.positions {
		vertices = append(vertices, p[:]...)
		if flags.Has(FlagNormals) {
			vertices = append(vertices, m.normals[i][:]...)
		}
		if flags.Has(FlagTexCoords) {
			vertices = append(vertices, 0, 0)
		}
	}
	return vertices
}

func (m *Mesh) TriangleIndices() []uint16 {
	indices := make([]uint16, 0, m.TriangleIndexCount())
	for _, f := range m.faces {
		indices = append(indices, f[:]...)
	}
	return indices
}
