package glw

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/gl"
)

type A3fv gl.Attrib

func (a A3fv) Enable()  { ctx.EnableVertexAttribArray(gl.Attrib(a)) }
func (a A3fv) Disable() { ctx.DisableVertexAttribArray(gl.Attrib(a)) }

// Pointer enables the attribute array reading from the bound ARRAY_BUFFER;
// stride and offset are in bytes.
func (a A3fv) Pointer(stride, offset int) {
	a.Enable()
	ctx.VertexAttribPointer(gl.Attrib(a), 3, gl.FLOAT, false, stride, offset)
}

// Set disables the attribute array and sets a constant value.
func (a A3fv) Set(v f32.Vec3) {
	a.Disable()
	ctx.VertexAttrib3f(gl.Attrib(a), v[0], v[1], v[2])
}
