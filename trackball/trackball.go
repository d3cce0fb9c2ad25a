// Package trackball turns pointer drags into 3D rotations by projecting
// screen points onto a virtual sphere.
package trackball

import (
	"image"
	"math"

	"dasa.cc/shapeview/geom"

	"golang.org/x/image/math/f32"
)

// Trackball tracks a single drag session. The zero value is not usable;
// see New and NewIn.
type Trackball struct {
	Center image.Point
	Radius float32

	start       image.Point
	previous    geom.Quat
	orientation geom.Quat
	dragging    bool
}

// New returns a trackball centered on a screen of the given size with a
// radius of one third the width.
func New(width, height int) *Trackball {
	return &Trackball{
		Center:      image.Pt(width/2, height/2),
		Radius:      float32(width) / 3,
		previous:    geom.QuatIdent(),
		orientation: geom.QuatIdent(),
	}
}

// NewIn returns a trackball centered on r, a region of the screen in
// pointer coordinates.
func NewIn(r image.Rectangle) *Trackball {
	tb := New(r.Dx(), r.Dy())
	tb.Center = r.Min.Add(tb.Center)
	return tb
}

// MapToSphere projects p onto the unit hemisphere facing the viewer.
// Points outside the sphere are clamped onto its rim, just inside.
func (tb *Trackball) MapToSphere(p image.Point) f32.Vec3 {
	d := p.Sub(tb.Center)
	x, y := float32(d.X), -float32(d.Y)

	r := tb.Radius
	if l := float32(math.Hypot(float64(x), float64(y))); l > r-1 {
		theta := math.Atan2(float64(y), float64(x))
		x = (r - 1) * float32(math.Cos(theta))
		y = (r - 1) * float32(math.Sin(theta))
	}

	z := float32(math.Sqrt(float64(r*r - x*x - y*y)))
	return f32.Vec3{x / r, y / r, z / r}
}

// Begin starts a drag at p.
func (tb *Trackball) Begin(p image.Point) {
	tb.start = p
	tb.previous = tb.orientation
	tb.dragging = true
}

// Move rotates by the arc from the drag start to p, applied on top of the
// orientation held when the drag began. Move is a no-op when not dragging.
func (tb *Trackball) Move(p image.Point) {
	if !tb.dragging {
		return
	}
	delta := geom.QuatFromVectors(tb.MapToSphere(tb.start), tb.MapToSphere(p))
	tb.orientation = delta.Rotated(tb.previous)
}

// End finishes the drag; the current orientation is kept.
func (tb *Trackball) End(p image.Point) { tb.dragging = false }

func (tb *Trackball) Dragging() bool { return tb.dragging }

func (tb *Trackball) Orientation() geom.Quat { return tb.orientation }

// Reset cancels any drag and returns to the identity orientation.
func (tb *Trackball) Reset() {
	tb.dragging = false
	tb.previous = geom.QuatIdent()
	tb.orientation = geom.QuatIdent()
}
