package engine

import (
	"image"

	"dasa.cc/shapeview/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection returns the perspective projection for a viewport of the given
// size. The frustum is 4 units wide at the near plane and keeps the
// viewport's aspect ratio.
func Projection(size image.Point) mgl32.Mat4 {
	h := 4 * float32(size.Y) / float32(size.X)
	return mgl32.Frustum(-2, 2, -h/2, h/2, 5, 10)
}

// Modelview rotates a shape by q and places it 7 units in front of the camera.
func Modelview(q geom.Quat) mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -7).Mul4(mgl32.Mat4(q.Mat4()))
}

// Project maps p through the camera for a viewport of the given size and
// returns window coordinates with the origin at the top left. ok is false
// when p is behind the camera.
func Project(p mgl32.Vec3, mvp mgl32.Mat4, size image.Point) (x, y float32, ok bool) {
	c := mvp.Mul4x1(p.Vec4(1))
	if c[3] <= 0 {
		return 0, 0, false
	}
	nx, ny := c[0]/c[3], c[1]/c[3]
	return (nx + 1) / 2 * float32(size.X), (1 - ny) / 2 * float32(size.Y), true
}
