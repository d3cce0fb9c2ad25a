package glw

import (
	"math"

	"golang.org/x/mobile/gl"
)

// FloatBuffer is an ARRAY_BUFFER of float32.
type FloatBuffer struct {
	gl.Buffer
	count int
}

func (buf *FloatBuffer) Create(usage gl.Enum, data []float32) {
	buf.Buffer = ctx.CreateBuffer()
	buf.count = len(data)
	buf.Bind()
	ctx.BufferData(gl.ARRAY_BUFFER, float32Bytes(data), usage)
}

func (buf FloatBuffer) Delete()  { ctx.DeleteBuffer(buf.Buffer) }
func (buf FloatBuffer) Bind()    { ctx.BindBuffer(gl.ARRAY_BUFFER, buf.Buffer) }
func (buf FloatBuffer) Len() int { return buf.count }

// IndexBuffer is an ELEMENT_ARRAY_BUFFER of uint16.
type IndexBuffer struct {
	gl.Buffer
	count int
}

func (buf *IndexBuffer) Create(usage gl.Enum, data []uint16) {
	buf.Buffer = ctx.CreateBuffer()
	buf.count = len(data)
	buf.Bind()
	ctx.BufferData(gl.ELEMENT_ARRAY_BUFFER, uint16Bytes(data), usage)
}

func (buf IndexBuffer) Delete()  { ctx.DeleteBuffer(buf.Buffer) }
func (buf IndexBuffer) Bind()    { ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.Buffer) }
func (buf IndexBuffer) Len() int { return buf.count }

// Draw binds buf and draws all its indices with mode.
func (buf IndexBuffer) Draw(mode gl.Enum) {
	buf.Bind()
	ctx.DrawElements(mode, buf.count, gl.UNSIGNED_SHORT, 0)
}

func float32Bytes(data []float32) []byte {
	bin := make([]byte, len(data)*4)
	for i, x := range data {
		u := math.Float32bits(x)
		bin[4*i+0] = byte(u >> 0)
		bin[4*i+1] = byte(u >> 8)
		bin[4*i+2] = byte(u >> 16)
		bin[4*i+3] = byte(u >> 24)
	}
	return bin
}

func uint16Bytes(data []uint16) []byte {
	bin := make([]byte, len(data)*2)
	for i, u := range data {
		bin[2*i+0] = byte(u >> 0)
		bin[2*i+1] = byte(u >> 8)
	}
	return bin
}
