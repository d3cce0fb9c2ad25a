package trackball

import (
	"image"
	"math"
	"testing"
	"testing/quick"

	"dasa.cc/shapeview/geom"

	"golang.org/x/image/math/f32"
)

func TestMapToSphereCenter(t *testing.T) {
	tb := New(300, 400)
	if have, want := tb.MapToSphere(image.Pt(150, 200)), (f32.Vec3{0, 0, 1}); !geom.Equals3(have, want) {
		t.Fatalf("have %s want %s", geom.String3(have), geom.String3(want))
	}
}

func TestMapToSphereUnit(t *testing.T) {
	tb := New(300, 400)
	f := func(x, y int16) bool {
		v := tb.MapToSphere(image.Pt(int(x), int(y)))
		return geom.EqualsEps(geom.Len3(v), 1, 1e-3) && v[2] >= 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestMapToSphereInvertsY(t *testing.T) {
	tb := New(300, 400)
	if v := tb.MapToSphere(image.Pt(150, 150)); v[1] <= 0 {
		t.Fatalf("point above center mapped to %s", geom.String3(v))
	}
}

func TestMapToSphereFar(t *testing.T) {
	tb := New(300, 400)
	v := tb.MapToSphere(image.Pt(5000, 200))
	if !geom.EqualsEps(geom.Len3(v), 1, 1e-3) {
		t.Fatalf("have %s, not unit length", geom.String3(v))
	}
	if v[0] < 0.98 || math.IsNaN(float64(v[2])) {
		t.Fatalf("far point not clamped to rim: %s", geom.String3(v))
	}
}

func TestTapNoRotation(t *testing.T) {
	tb := New(300, 400)
	tb.Begin(image.Pt(100, 100))
	tb.End(image.Pt(100, 100))
	if q := tb.Orientation(); !q.IsIdent() {
		t.Fatalf("have %v want identity", q)
	}
	if tb.Dragging() {
		t.Fatal("still dragging")
	}
}

func TestDragRight(t *testing.T) {
	tb := New(300, 400)
	tb.Begin(image.Pt(150, 200))
	tb.Move(image.Pt(200, 200))
	q := tb.Orientation()
	if q.IsIdent() {
		t.Fatal("no rotation")
	}
	axis := q.Axis()
	if !geom.EqualsEps(axis[2], 0, 1e-3) || !geom.EqualsEps(axis[0], 0, 1e-3) || axis[1] <= 0 {
		t.Fatalf("have axis %s, want +y", geom.String3(axis))
	}
	if !geom.EqualsEps(q.Len(), 1, 1e-4) {
		t.Fatalf("have length %v, want 1", q.Len())
	}
}

func TestDragAccumulates(t *testing.T) {
	tb := New(300, 400)
	tb.Begin(image.Pt(150, 200))
	tb.Move(image.Pt(170, 200))
	tb.Move(image.Pt(200, 200))
	tb.End(image.Pt(200, 200))
	first := tb.Orientation()

	// the drag start is never updated, so intermediate moves don't compound.
	want := geom.QuatFromVectors(tb.MapToSphere(image.Pt(150, 200)), tb.MapToSphere(image.Pt(200, 200)))
	if !geom.EqualsEps(first.Dot(want), 1, 1e-4) {
		t.Fatalf("have %v want %v", first, want)
	}

	tb.Begin(image.Pt(150, 200))
	tb.Move(image.Pt(200, 200))
	second := tb.Orientation()
	if !geom.EqualsEps(second.Angle(), 2*first.Angle(), 1e-3) {
		t.Fatalf("second drag angle %v, want %v", second.Angle(), 2*first.Angle())
	}
}

func TestMoveWithoutBegin(t *testing.T) {
	tb := New(300, 400)
	tb.Move(image.Pt(10, 10))
	if !tb.Orientation().IsIdent() {
		t.Fatal("rotated without a drag")
	}
}

func TestNewIn(t *testing.T) {
	tb := NewIn(image.Rect(0, 0, 300, 360))
	if have, want := tb.Center, image.Pt(150, 180); have != want {
		t.Fatalf("Center: have %v want %v", have, want)
	}
	tb = NewIn(image.Rect(10, 20, 310, 380))
	if have, want := tb.Center, image.Pt(160, 200); have != want {
		t.Fatalf("Center: have %v want %v", have, want)
	}
	if have, want := tb.Radius, float32(100); have != want {
		t.Fatalf("Radius: have %v want %v", have, want)
	}
}

func TestReset(t *testing.T) {
	tb := New(300, 400)
	tb.Begin(image.Pt(150, 200))
	tb.Move(image.Pt(250, 100))
	tb.Reset()
	if tb.Dragging() || !tb.Orientation().IsIdent() {
		t.Fatalf("Reset: dragging %v orientation %v", tb.Dragging(), tb.Orientation())
	}
}
