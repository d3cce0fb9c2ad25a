// Package surface tessellates shapes into vertex and index lists ready for
// upload to GL buffers.
//
// A Surface is consumed once: the vertex and index slices it generates are
// copied into GPU buffers and the Surface itself may then be dropped.
package surface

import "errors"

// VertexFlags selects the attributes interleaved after each vertex position.
type VertexFlags uint8

const (
	FlagNormals VertexFlags = 1 << iota
	FlagTexCoords
)

func (f VertexFlags) Has(x VertexFlags) bool { return f&x == x }

// Stride returns the number of floats per vertex for flags.
func (f VertexFlags) Stride() int {
	n := 3
	if f.Has(FlagNormals) {
		n += 3
	}
	if f.Has(FlagTexCoords) {
		n += 2
	}
	return n
}

// MaxVertices is the largest vertex count addressable by uint16 indices.
const MaxVertices = 1 << 16

var (
	ErrTooManyVertices = errors.New("surface: vertex count exceeds uint16 index range")
	ErrDivisions       = errors.New("surface: divisions must be at least 2 on each axis")
)

// Surface describes tessellated geometry. Slices returned are sized exactly
// to the matching count.
type Surface interface {
	VertexCount() int
	LineIndexCount() int
	TriangleIndexCount() int

	// Vertices returns positions, each followed by attributes selected by flags.
	Vertices(flags VertexFlags) []float32

	LineIndices() []uint16
	TriangleIndices() []uint16
}
