package glw

import (
	"fmt"
	"reflect"
	"unicode"

	"golang.org/x/mobile/gl"
)

func compile(typ gl.Enum, src string) (gl.Shader, error) {
	shd := ctx.CreateShader(typ)
	ctx.ShaderSource(shd, src)
	ctx.CompileShader(shd)
	if ctx.GetShaderi(shd, gl.COMPILE_STATUS) == 0 {
		defer ctx.DeleteShader(shd)
		return shd, fmt.Errorf("%s\n%s", caller("CompileShader"), ctx.GetShaderInfoLog(shd))
	}
	return shd, nil
}

// VertSrc is vertex shader source code.
type VertSrc string

func (src VertSrc) Compile() (gl.Shader, error) { return compile(gl.VERTEX_SHADER, string(src)) }

// FragSrc is fragment shader source code.
type FragSrc string

func (src FragSrc) Compile() (gl.Shader, error) { return compile(gl.FRAGMENT_SHADER, string(src)) }

// Program identifies a compiled shader program.
type Program struct{ gl.Program }

func (prg Program) Use()                           { ctx.UseProgram(prg.Program) }
func (prg Program) Uniform(name string) gl.Uniform { return ctx.GetUniformLocation(prg.Program, name) }
func (prg Program) Attrib(name string) gl.Attrib   { return ctx.GetAttribLocation(prg.Program, name) }
func (prg Program) Delete()                        { ctx.DeleteProgram(prg.Program) }

// Build compiles shaders and links program.
func (prg *Program) Build(vsrc VertSrc, fsrc FragSrc) error {
	prg.Program = ctx.CreateProgram()

	vshd, err := vsrc.Compile()
	if err != nil {
		return err
	}
	ctx.AttachShader(prg.Program, vshd)
	defer ctx.DeleteShader(vshd)

	fshd, err := fsrc.Compile()
	if err != nil {
		return err
	}
	ctx.AttachShader(prg.Program, fshd)
	defer ctx.DeleteShader(fshd)

	ctx.LinkProgram(prg.Program)
	if ctx.GetProgrami(prg.Program, gl.LINK_STATUS) == 0 {
		return fmt.Errorf("%s\n%s", caller("LinkProgram"), ctx.GetProgramInfoLog(prg.Program))
	}
	return nil
}

// Unmarshal recursively sets fields of dst for recognized types, looking
// up each by its field name with the first letter lowered.
func (prg Program) Unmarshal(dst interface{}) {
	var val reflect.Value
	if v, ok := dst.(reflect.Value); ok {
		val = v
	} else {
		val = reflect.ValueOf(dst).Elem()
	}
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		if f := val.Field(i); f.CanSet() {
			p := []rune(typ.Field(i).Name)
			p[0] = unicode.ToLower(p[0])
			name := string(p)
			switch f.Interface().(type) {
			case A3fv:
				f.Set(reflect.ValueOf(A3fv(prg.Attrib(name))))
			case U1f:
				f.Set(reflect.ValueOf(U1f(prg.Uniform(name))))
			case U3fv:
				f.Set(reflect.ValueOf(U3fv(prg.Uniform(name))))
			case U9fv:
				f.Set(reflect.ValueOf(U9fv(prg.Uniform(name))))
			case U16fv:
				f.Set(reflect.ValueOf(U16fv(prg.Uniform(name))))
			default:
				if f.Kind() == reflect.Struct {
					prg.Unmarshal(f)
				}
			}
		}
	}
}
