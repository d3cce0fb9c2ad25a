// Package snapshot renders wireframe images of surfaces on the CPU, using
// the same camera as the GL renderer.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"dasa.cc/shapeview/engine"
	"dasa.cc/shapeview/geom"
	"dasa.cc/shapeview/surface"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/shiny/materialdesign/colornames"
	"golang.org/x/image/vector"
)

var ErrEmpty = errors.New("snapshot: empty image size")

type Options struct {
	Background color.Color
	Foreground color.Color

	// LineWidth in pixels.
	LineWidth float32
}

func DefaultOptions() Options {
	return Options{
		Background: colornames.BlueGrey900,
		Foreground: colornames.LightBlueA400,
		LineWidth:  1,
	}
}

// Render draws the edges of s rotated by q into a new image of the given
// size. Line indices are drawn when present, triangle edges otherwise.
func Render(s surface.Surface, q geom.Quat, size image.Point, opts Options) (*image.RGBA, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrEmpty, size)
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}

	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	mvp := engine.Projection(size).Mul4(engine.Modelview(q))
	vs := s.Vertices(0)
	pts := make([]mgl32.Vec2, len(vs)/3)
	ok := make([]bool, len(pts))
	for i := range pts {
		x, y, in := engine.Project(mgl32.Vec3{vs[3*i], vs[3*i+1], vs[3*i+2]}, mvp, size)
		pts[i], ok[i] = mgl32.Vec2{x, y}, in
	}

	z := vector.NewRasterizer(size.X, size.Y)
	hw := opts.LineWidth / 2
	line := func(a, b uint16) {
		if !ok[a] || !ok[b] {
			return
		}
		segment(z, pts[a], pts[b], hw)
	}

	if idx := s.LineIndices(); len(idx) > 0 {
		for i := 0; i+1 < len(idx); i += 2 {
			line(idx[i], idx[i+1])
		}
	} else {
		idx := s.TriangleIndices()
		for i := 0; i+2 < len(idx); i += 3 {
			line(idx[i], idx[i+1])
			line(idx[i+1], idx[i+2])
			line(idx[i+2], idx[i])
		}
	}

	z.Draw(dst, dst.Bounds(), image.NewUniform(opts.Foreground), image.Point{})
	return dst, nil
}

// segment adds a quad of half width hw around a-b. Every quad winds the
// same way so overlapping segments never cancel.
func segment(z *vector.Rasterizer, a, b mgl32.Vec2, hw float32) {
	d := b.Sub(a)
	l := d.Len()
	if l < 1e-3 || math.IsNaN(float64(l)) {
		return
	}
	n := mgl32.Vec2{-d[1], d[0]}.Mul(hw / l)
	z.MoveTo(a[0]+n[0], a[1]+n[1])
	z.LineTo(b[0]+n[0], b[1]+n[1])
	z.LineTo(b[0]-n[0], b[1]-n[1])
	z.LineTo(a[0]-n[0], a[1]-n[1])
	z.ClosePath()
}

func WritePNG(w io.Writer, img image.Image) error { return png.Encode(w, img) }

// Save writes img to the named file as PNG.
func Save(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	return f.Close()
}
