package glw

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/gl"
)

type U1f gl.Uniform

func (u U1f) Set(v float32) { ctx.Uniform1f(gl.Uniform(u), v) }

type U3fv gl.Uniform

func (u U3fv) Set(v f32.Vec3) { ctx.Uniform3fv(gl.Uniform(u), v[:]) }

// U9fv is a mat3 uniform; values are uploaded in the order given.
type U9fv gl.Uniform

func (u U9fv) Set(m f32.Mat3) { ctx.UniformMatrix3fv(gl.Uniform(u), m[:]) }

// U16fv is a mat4 uniform; values are uploaded in the order given.
type U16fv gl.Uniform

func (u U16fv) Set(m f32.Mat4) { ctx.UniformMatrix4fv(gl.Uniform(u), m[:]) }
