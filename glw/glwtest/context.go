// Package glwtest provides a recording gl.Context for tests that exercise
// GL plumbing without a GPU.
package glwtest

import (
	"fmt"

	"golang.org/x/mobile/gl"
)

// Draw records one DrawElements call with the state it was issued under.
type Draw struct {
	Mode, Type    gl.Enum
	Count, Offset int
	Array         gl.Buffer
	Elements      gl.Buffer
	Viewport      [4]int
}

// Context implements the subset of gl.Context used by glw. Calling any
// other method panics on the nil embedded interface.
type Context struct {
	gl.Context

	// FailCompile and FailLink force shader build failures.
	FailCompile, FailLink bool

	Buffers  map[gl.Buffer][]byte
	Deleted  []gl.Buffer
	Draws    []Draw
	Uniforms map[string][]float32
	Attribs  map[string][]float32
	Enabled  map[gl.Enum]bool
	Clears   int
	Programs int

	next     uint32
	bound    map[gl.Enum]gl.Buffer
	viewport [4]int
	uniforms map[gl.Uniform]string
	attribs  map[gl.Attrib]string
	arrays   map[gl.Attrib]bool
}

func NewContext() *Context {
	return &Context{
		Buffers:  make(map[gl.Buffer][]byte),
		Uniforms: make(map[string][]float32),
		Attribs:  make(map[string][]float32),
		Enabled:  make(map[gl.Enum]bool),
		bound:    make(map[gl.Enum]gl.Buffer),
		uniforms: make(map[gl.Uniform]string),
		attribs:  make(map[gl.Attrib]string),
		arrays:   make(map[gl.Attrib]bool),
	}
}

func (c *Context) id() uint32 { c.next++; return c.next }

// ArrayEnabled reports whether the named attribute array is enabled.
func (c *Context) ArrayEnabled(name string) bool {
	for a, s := range c.attribs {
		if s == name {
			return c.arrays[a]
		}
	}
	return false
}

func (c *Context) CreateShader(ty gl.Enum) gl.Shader    { return gl.Shader{Value: c.id()} }
func (c *Context) ShaderSource(s gl.Shader, src string) {}
func (c *Context) CompileShader(s gl.Shader)            {}
func (c *Context) DeleteShader(s gl.Shader)             {}
func (c *Context) GetShaderInfoLog(s gl.Shader) string  { return "0:1: syntax error" }

func (c *Context) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS && c.FailCompile {
		return 0
	}
	return 1
}

func (c *Context) CreateProgram() gl.Program {
	c.Programs++
	return gl.Program{Init: true, Value: c.id()}
}

func (c *Context) AttachShader(p gl.Program, s gl.Shader) {}
func (c *Context) LinkProgram(p gl.Program)               {}
func (c *Context) UseProgram(p gl.Program)                {}
func (c *Context) DeleteProgram(p gl.Program)             { c.Programs-- }
func (c *Context) GetProgramInfoLog(p gl.Program) string  { return "link failed" }

func (c *Context) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS && c.FailLink {
		return 0
	}
	return 1
}

func (c *Context) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	u := gl.Uniform{Value: int32(c.id())}
	c.uniforms[u] = name
	return u
}

func (c *Context) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	a := gl.Attrib{Value: uint(c.id())}
	c.attribs[a] = name
	return a
}

func (c *Context) setUniform(u gl.Uniform, v []float32) {
	name, ok := c.uniforms[u]
	if !ok {
		panic(fmt.Errorf("glwtest: unknown uniform %v", u))
	}
	c.Uniforms[name] = append([]float32(nil), v...)
}

func (c *Context) Uniform1f(u gl.Uniform, v float32)          { c.setUniform(u, []float32{v}) }
func (c *Context) Uniform3fv(u gl.Uniform, v []float32)       { c.setUniform(u, v) }
func (c *Context) UniformMatrix3fv(u gl.Uniform, v []float32) { c.setUniform(u, v) }
func (c *Context) UniformMatrix4fv(u gl.Uniform, v []float32) { c.setUniform(u, v) }

func (c *Context) EnableVertexAttribArray(a gl.Attrib)  { c.arrays[a] = true }
func (c *Context) DisableVertexAttribArray(a gl.Attrib) { c.arrays[a] = false }

func (c *Context) VertexAttribPointer(a gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
}

func (c *Context) VertexAttrib3f(a gl.Attrib, x, y, z float32) {
	c.Attribs[c.attribs[a]] = []float32{x, y, z}
}

func (c *Context) CreateBuffer() gl.Buffer { return gl.Buffer{Value: c.id()} }

func (c *Context) BindBuffer(target gl.Enum, b gl.Buffer) { c.bound[target] = b }

func (c *Context) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	c.Buffers[c.bound[target]] = append([]byte(nil), src...)
}

func (c *Context) DeleteBuffer(b gl.Buffer) {
	delete(c.Buffers, b)
	c.Deleted = append(c.Deleted, b)
}

func (c *Context) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	c.Draws = append(c.Draws, Draw{
		Mode:     mode,
		Type:     ty,
		Count:    count,
		Offset:   offset,
		Array:    c.bound[gl.ARRAY_BUFFER],
		Elements: c.bound[gl.ELEMENT_ARRAY_BUFFER],
		Viewport: c.viewport,
	})
}

func (c *Context) Viewport(x, y, width, height int) { c.viewport = [4]int{x, y, width, height} }

func (c *Context) ClearColor(red, green, blue, alpha float32) {}
func (c *Context) Clear(mask gl.Enum)                         { c.Clears++ }
func (c *Context) Enable(cap gl.Enum)                         { c.Enabled[cap] = true }
func (c *Context) Disable(cap gl.Enum)                        { c.Enabled[cap] = false }
