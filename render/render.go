// Package render draws surfaces with GL ES 2.0, either lit and filled or
// as unlit wireframes.
package render

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"dasa.cc/shapeview/engine"
	"dasa.cc/shapeview/glw"
	"dasa.cc/shapeview/surface"

	"golang.org/x/exp/slices"
	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/gl"
)

var logger = log.New(os.Stderr, "render: ", 0)

type Mode int

const (
	ModeTriangles Mode = iota
	ModeLines
)

func (m Mode) String() string {
	switch m {
	case ModeTriangles:
		return "triangles"
	case ModeLines:
		return "lines"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "triangles":
		return ModeTriangles, nil
	case "lines":
		return ModeLines, nil
	}
	return 0, fmt.Errorf("render: unknown mode %q", s)
}

// Light holds the lighting constants of ModeTriangles.
type Light struct {
	Position  f32.Vec3
	Ambient   f32.Vec3
	Specular  f32.Vec3
	Shininess float32
}

func DefaultLight() Light {
	return Light{
		Position:  f32.Vec3{0.25, 0.25, 1},
		Ambient:   f32.Vec3{0, 0, 0.5},
		Specular:  f32.Vec3{1, 1, 0},
		Shininess: 1.5,
	}
}

type shader struct {
	Position        glw.A3fv
	Normal          glw.A3fv
	DiffuseMaterial glw.A3fv

	Projection   glw.U16fv
	Modelview    glw.U16fv
	NormalMatrix glw.U9fv

	LightPosition    glw.U3fv
	AmbientMaterial  glw.U3fv
	SpecularMaterial glw.U3fv
	Shininess        glw.U1f
}

type drawable struct {
	vertices glw.FloatBuffer
	index    int
	mode     gl.Enum
}

// Renderer implements engine.Renderer.
type Renderer struct {
	ctx   gl.Context
	mode  Mode
	Light Light
	Clear color.Color

	prg       glw.Program
	shader    shader
	drawables []drawable
	indices   []glw.IndexBuffer
}

var _ engine.Renderer = (*Renderer)(nil)

func New(ctx gl.Context, mode Mode) *Renderer {
	return &Renderer{
		ctx:   ctx,
		mode:  mode,
		Light: DefaultLight(),
		Clear: color.Gray{0x80},
	}
}

func (r *Renderer) Mode() Mode { return r.mode }

func (r *Renderer) flags() surface.VertexFlags {
	if r.mode == ModeTriangles {
		return surface.FlagNormals
	}
	return 0
}

// Initialize builds the shader program and uploads one vertex buffer per
// surface. Surfaces with identical indices share one index buffer.
func (r *Renderer) Initialize(surfaces []surface.Surface) error {
	glw.With(r.ctx)

	vsrc, fsrc := litVert, litFrag
	if r.mode == ModeLines {
		vsrc, fsrc = flatVert, flatFrag
	}
	if err := r.prg.Build(vsrc, fsrc); err != nil {
		return err
	}
	r.prg.Unmarshal(&r.shader)

	// index data is kept only until every surface is uploaded.
	var uploaded [][]uint16
	for _, s := range surfaces {
		var d drawable
		d.vertices.Create(gl.STATIC_DRAW, s.Vertices(r.flags()))

		indices, mode := s.TriangleIndices(), gl.Enum(gl.TRIANGLES)
		if r.mode == ModeLines && s.LineIndexCount() > 0 {
			indices, mode = s.LineIndices(), gl.LINES
		}
		d.mode = mode

		d.index = -1
		for i, x := range uploaded {
			if slices.Equal(x, indices) {
				d.index = i
				break
			}
		}
		if d.index == -1 {
			var buf glw.IndexBuffer
			buf.Create(gl.STATIC_DRAW, indices)
			d.index = len(r.indices)
			r.indices = append(r.indices, buf)
			uploaded = append(uploaded, indices)
		}
		r.drawables = append(r.drawables, d)
	}
	logger.Printf("%v surfaces, %v index buffers, mode %v", len(r.drawables), len(r.indices), r.mode)

	if r.mode == ModeTriangles {
		r.ctx.Enable(gl.DEPTH_TEST)
	}
	return nil
}

// IndexBuffers returns the number of distinct index buffers uploaded.
func (r *Renderer) IndexBuffers() int { return len(r.indices) }

// Render clears the screen and draws each surface with its visual.
// Visuals beyond the number of surfaces are ignored.
func (r *Renderer) Render(visuals []engine.Visual) {
	glw.With(r.ctx)

	r.ctx.ClearColor(glw.RGBA(r.Clear))
	r.ctx.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.prg.Use()

	lit := r.mode == ModeTriangles
	if lit {
		r.shader.LightPosition.Set(r.Light.Position)
		r.shader.AmbientMaterial.Set(r.Light.Ambient)
		r.shader.SpecularMaterial.Set(r.Light.Specular)
		r.shader.Shininess.Set(r.Light.Shininess)
	}

	stride := 4 * r.flags().Stride()
	for i, v := range visuals {
		if i >= len(r.drawables) {
			break
		}
		if v.ViewportSize.X <= 0 || v.ViewportSize.Y <= 0 {
			continue
		}
		r.ctx.Viewport(v.LowerLeft.X, v.LowerLeft.Y, v.ViewportSize.X, v.ViewportSize.Y)

		projection := engine.Projection(v.ViewportSize)
		modelview := engine.Modelview(v.Orientation)
		r.shader.Projection.Set(f32.Mat4(projection))
		r.shader.Modelview.Set(f32.Mat4(modelview))
		if lit {
			r.shader.NormalMatrix.Set(f32.Mat3(modelview.Mat3()))
		}
		r.shader.DiffuseMaterial.Set(v.Color)

		d := r.drawables[i]
		d.vertices.Bind()
		r.shader.Position.Pointer(stride, 0)
		if lit {
			r.shader.Normal.Pointer(stride, 12)
		}
		r.indices[d.index].Draw(d.mode)
	}
}

// Release deletes every buffer and the program.
func (r *Renderer) Release() {
	glw.With(r.ctx)
	for _, d := range r.drawables {
		d.vertices.Delete()
	}
	for _, buf := range r.indices {
		buf.Delete()
	}
	if r.prg.Init {
		r.prg.Delete()
	}
	r.drawables, r.indices = nil, nil
	r.prg = glw.Program{}
}
