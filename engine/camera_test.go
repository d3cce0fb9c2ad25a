package engine

import (
	"image"
	"testing"

	"dasa.cc/shapeview/geom"

	"github.com/go-gl/mathgl/mgl32"
)

func TestProjection(t *testing.T) {
	m := Projection(image.Pt(300, 360))
	if !geom.Equals(m[0], 2.5) {
		t.Fatalf("have m[0] %v want 2.5", m[0])
	}
	// h = 4.8 so 2n/(t-b) = 10/4.8
	if !geom.Equals(m[5], 10/4.8) {
		t.Fatalf("have m[5] %v want %v", m[5], 10/4.8)
	}
}

func TestModelview(t *testing.T) {
	mv := Modelview(geom.QuatIdent())
	if mv[14] != -7 || mv[0] != 1 || mv[5] != 1 || mv[10] != 1 {
		t.Fatalf("have %v", mv)
	}
}

func TestProject(t *testing.T) {
	size := image.Pt(200, 100)
	mvp := Projection(size).Mul4(Modelview(geom.QuatIdent()))

	x, y, ok := Project(mgl32.Vec3{0, 0, 0}, mvp, size)
	if !ok || !geom.Equals(x, 100) || !geom.Equals(y, 50) {
		t.Fatalf("origin: have %v %v %v", x, y, ok)
	}
	// +y is up on screen, so lands above center.
	_, y, _ = Project(mgl32.Vec3{0, 1, 0}, mvp, size)
	if y >= 50 {
		t.Fatalf("up: have y %v", y)
	}
	if _, _, ok := Project(mgl32.Vec3{0, 0, 8}, mvp, size); ok {
		t.Fatal("point behind camera projected")
	}
}
