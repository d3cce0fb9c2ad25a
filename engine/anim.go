package engine

import (
	"image"
	"math"
	"time"

	"dasa.cc/shapeview/geom"
)

// ExpDrive eases out, rising quickly from 0 and settling near 1.
func ExpDrive(t float64) float64 {
	return 1 - math.Exp(2*math.Pi*-t)
}

func Linear(t float64) float64 { return t }

// ParseInterp returns the transition easing named s, "drive" or "linear".
func ParseInterp(s string) (func(float64) float64, bool) {
	switch s {
	case "", "drive":
		return ExpDrive, true
	case "linear":
		return Linear, true
	}
	return nil, false
}

// transition tweens between two sets of visuals. It is advanced by the
// frame delta rather than wall time.
type transition struct {
	from, to []Visual

	elapsed time.Duration
	dur     time.Duration
	interp  func(float64) float64
	active  bool
}

func (a *transition) start(from, to []Visual) {
	a.from, a.to = from, to
	a.elapsed = 0
	a.active = a.dur > 0
}

func (a *transition) step(dt time.Duration) {
	if !a.active {
		return
	}
	a.elapsed += dt
	if a.elapsed >= a.dur {
		a.active = false
	}
}

func (a *transition) at() []Visual {
	t := float32(a.interp(float64(a.elapsed) / float64(a.dur)))
	vs := make([]Visual, len(a.from))
	for i := range vs {
		vs[i] = a.from[i].Lerp(a.to[i], t)
	}
	return vs
}

// Lerp interpolates color and viewport linearly and orientation along the
// shortest arc.
func (v Visual) Lerp(to Visual, t float32) Visual {
	return Visual{
		Color:        geom.Lerp3(v.Color, to.Color, t),
		LowerLeft:    lerpPt(v.LowerLeft, to.LowerLeft, t),
		ViewportSize: lerpPt(v.ViewportSize, to.ViewportSize, t),
		Orientation:  v.Orientation.Slerp(to.Orientation, t),
	}
}

func lerpPt(a, b image.Point, t float32) image.Point {
	return image.Pt(
		a.X+int(math.Round(float64(t)*float64(b.X-a.X))),
		a.Y+int(math.Round(float64(t)*float64(b.Y-a.Y))),
	)
}
