// Package glw wraps golang.org/x/mobile/gl with typed programs, uniforms,
// attributes and buffers.
//
// The package operates on a single gl.Context set by With.
package glw

import (
	"fmt"
	"image/color"
	"runtime"
	"strings"

	"golang.org/x/mobile/gl"
)

var ctx gl.Context

// With sets the context used by the package and returns it.
func With(glctx gl.Context) gl.Context { ctx = glctx; return glctx }

// RGBA returns the components of c in [0, 1], suitable for ClearColor.
func RGBA(c color.Color) (r, g, b, a float32) {
	ur, ug, ub, ua := c.RGBA()
	return float32(ur) / 0xffff, float32(ug) / 0xffff, float32(ub) / 0xffff, float32(ua) / 0xffff
}

const pkgPath = "dasa.cc/shapeview/glw"

// caller returns first file and line number outside of this package for calling
// goroutine's stack, prefixed with defaultName which may be overridden based on
// stack frames.
func caller(defaultName string) string {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	var (
		frame runtime.Frame
		more  bool
		name  = defaultName
		inpkg = func(s string) bool { return strings.HasPrefix(s, pkgPath) }
	)

	for frame, more = frames.Next(); more && inpkg(frame.Function); frame, more = frames.Next() {
		switch frame.Function {
		case pkgPath + ".VertSrc.Compile":
			name = "VertexShader"
		case pkgPath + ".FragSrc.Compile":
			name = "FragmentShader"
		}
	}

	return fmt.Sprintf("%s %s:%v", name, frame.File, frame.Line)
}
