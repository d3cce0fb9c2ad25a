package engine

import (
	"image/color"

	"golang.org/x/exp/shiny/materialdesign/colornames"
	"golang.org/x/image/math/f32"
)

// Palette colors the visuals.
type Palette struct {
	Active   f32.Vec3 // active surface at rest
	Dragging f32.Vec3 // active surface while rotating
	Button   f32.Vec3
	Pressed  f32.Vec3
}

func DefaultPalette() Palette {
	return Palette{
		Active:   f32.Vec3{0, 0.5, 1},
		Dragging: f32.Vec3{1, 1, 1},
		Button:   f32.Vec3{0.75, 0.75, 0.75},
		Pressed:  f32.Vec3{1, 1, 1},
	}
}

// MaterialPalette returns a palette of material design colors.
func MaterialPalette() Palette {
	return Palette{
		Active:   RGB(colornames.LightBlueA400),
		Dragging: RGB(colornames.White),
		Button:   RGB(colornames.Grey400),
		Pressed:  RGB(colornames.Amber200),
	}
}

// ParsePalette returns the palette named s, "default" or "material".
func ParsePalette(s string) (Palette, bool) {
	switch s {
	case "", "default":
		return DefaultPalette(), true
	case "material":
		return MaterialPalette(), true
	}
	return Palette{}, false
}

// RGB returns the color components of c in [0, 1].
func RGB(c color.Color) f32.Vec3 {
	r, g, b, _ := c.RGBA()
	return f32.Vec3{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff}
}
