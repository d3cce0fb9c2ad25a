// Package engine holds the interactive state of the shape viewer: which
// surface is active, the trackball rotating it, the strip of thumbnail
// buttons along the bottom of the screen and the transition played when a
// thumbnail is tapped.
//
// Engine methods are called from a single event loop; none block.
package engine

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"dasa.cc/shapeview/geom"
	"dasa.cc/shapeview/surface"
	"dasa.cc/shapeview/trackball"

	"golang.org/x/image/math/f32"
)

var logger = log.New(os.Stderr, "engine: ", 0)

var ErrNoSurfaces = errors.New("engine: no surfaces")

// Visual is the per-frame draw record of one surface. LowerLeft and
// ViewportSize are in GL window coordinates, origin at the bottom left.
type Visual struct {
	Color        f32.Vec3
	LowerLeft    image.Point
	ViewportSize image.Point
	Orientation  geom.Quat
}

// Viewport returns the visual's viewport as a rectangle in GL window coordinates.
func (v Visual) Viewport() image.Rectangle {
	return image.Rectangle{v.LowerLeft, v.LowerLeft.Add(v.ViewportSize)}
}

// Renderer draws surfaces. Initialize is called once with every surface;
// Render receives one Visual per surface, in the same order.
type Renderer interface {
	Initialize(surfaces []surface.Surface) error
	Render(visuals []Visual)
}

type Config struct {
	// Width and Height of the screen in pixels.
	Width, Height int

	Surfaces []surface.Surface

	// Active is the index of the surface initially shown in the main viewport.
	Active int

	Transition time.Duration
	Interp     func(float64) float64
	Palette    Palette
}

// DefaultConfig returns a config for a screen of the given size with no surfaces.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		Transition: 250 * time.Millisecond,
		Interp:     ExpDrive,
		Palette:    DefaultPalette(),
	}
}

type Engine struct {
	renderer Renderer
	palette  Palette

	size       image.Point
	buttonSize image.Point
	trackball  *trackball.Trackball

	// buttons maps each slot of the strip to a surface index.
	buttons []int
	current int
	pressed int

	anim transition
}

// New initializes r with cfg.Surfaces and returns an engine driving it.
// The engine keeps no reference to the surfaces.
func New(r Renderer, cfg Config) (*Engine, error) {
	n := len(cfg.Surfaces)
	if n == 0 {
		return nil, ErrNoSurfaces
	}
	if cfg.Active < 0 || cfg.Active >= n {
		return nil, fmt.Errorf("engine: active surface %v out of range [0, %v)", cfg.Active, n)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("engine: invalid screen size %vx%v", cfg.Width, cfg.Height)
	}
	if cfg.Interp == nil {
		cfg.Interp = ExpDrive
	}

	e := &Engine{
		renderer: r,
		palette:  cfg.Palette,
		size:     image.Pt(cfg.Width, cfg.Height),
		current:  cfg.Active,
		pressed:  -1,
		anim:     transition{dur: cfg.Transition, interp: cfg.Interp},
	}
	e.buttonSize.Y = cfg.Height / 10
	e.buttonSize.X = 4 * e.buttonSize.Y / 3
	e.trackball = trackball.NewIn(image.Rect(0, 0, cfg.Width, cfg.Height-e.buttonSize.Y))

	for i := 0; i < n; i++ {
		if i != cfg.Active {
			e.buttons = append(e.buttons, i)
		}
	}

	if err := r.Initialize(cfg.Surfaces); err != nil {
		return nil, fmt.Errorf("engine: initialize renderer: %w", err)
	}
	return e, nil
}

// Active returns the index of the surface in the main viewport.
func (e *Engine) Active() int { return e.current }

// Buttons returns the surface index shown in each slot of the strip.
func (e *Engine) Buttons() []int { return append([]int(nil), e.buttons...) }

// Pressed returns the slot currently pressed, or -1.
func (e *Engine) Pressed() int { return e.pressed }

func (e *Engine) Dragging() bool { return e.trackball.Dragging() }

func (e *Engine) Animating() bool { return e.anim.active }

func (e *Engine) Trackball() *trackball.Trackball { return e.trackball }

// MapToButton returns the strip slot under pointer location p, or -1.
// Pointer locations have their origin at the top left of the screen.
func (e *Engine) MapToButton(p image.Point) int {
	if p.X < 0 || p.Y < e.size.Y-e.buttonSize.Y || e.buttonSize.X == 0 {
		return -1
	}
	i := p.X / e.buttonSize.X
	if i < 0 || i >= len(e.buttons) {
		return -1
	}
	return i
}

func (e *Engine) OnFingerDown(p image.Point) {
	if e.pressed = e.MapToButton(p); e.pressed == -1 {
		e.trackball.Begin(p)
	}
}

func (e *Engine) OnFingerMove(old, p image.Point) {
	if e.trackball.Dragging() {
		e.trackball.Move(p)
		return
	}
	if e.pressed != -1 && e.MapToButton(p) != e.pressed {
		e.pressed = -1
	}
}

func (e *Engine) OnFingerUp(p image.Point) {
	e.trackball.End(p)

	if e.pressed != -1 && e.MapToButton(p) == e.pressed && !e.anim.active {
		start := e.populate()
		i := e.pressed
		e.buttons[i], e.current = e.current, e.buttons[i]
		e.pressed = -1
		e.anim.start(start, e.populate())
		logger.Printf("swap slot %v: active surface %v", i, e.current)
	}
	e.pressed = -1
}

// UpdateAnimation advances any running transition by dt.
func (e *Engine) UpdateAnimation(dt time.Duration) { e.anim.step(dt) }

// Visuals returns the draw records for this frame, indexed by surface.
// During a transition the active surface tweens toward its live trackball
// orientation and color.
func (e *Engine) Visuals() []Visual {
	if e.anim.active {
		to := &e.anim.to[e.current]
		to.Orientation = e.trackball.Orientation()
		to.Color = e.activeColor()
		return e.anim.at()
	}
	return e.populate()
}

func (e *Engine) activeColor() f32.Vec3 {
	if e.trackball.Dragging() {
		return e.palette.Dragging
	}
	return e.palette.Active
}

// Render submits this frame's visuals to the renderer.
func (e *Engine) Render() { e.renderer.Render(e.Visuals()) }

func (e *Engine) populate() []Visual {
	vs := make([]Visual, len(e.buttons)+1)
	for i, k := range e.buttons {
		c := e.palette.Button
		if i == e.pressed {
			c = e.palette.Pressed
		}
		vs[k] = Visual{
			Color:        c,
			LowerLeft:    image.Pt(i*e.buttonSize.X, 0),
			ViewportSize: e.buttonSize,
			Orientation:  geom.QuatIdent(),
		}
	}
	vs[e.current] = Visual{
		Color:        e.activeColor(),
		LowerLeft:    image.Pt(0, e.buttonSize.Y),
		ViewportSize: image.Pt(e.size.X, e.size.Y-e.buttonSize.Y),
		Orientation:  e.trackball.Orientation(),
	}
	return vs
}
