package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"dasa.cc/shapeview/engine"
	"dasa.cc/shapeview/gesture"
	"dasa.cc/shapeview/render"
	"dasa.cc/shapeview/surface"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/exp/app/debug"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"
)

var (
	flagMode       = flag.String("mode", "triangles", "draw mode, triangles or lines")
	flagShape      = flag.String("shape", "cone", "shape shown in the main viewport at start")
	flagObj        = flag.String("obj", "", "name of an OBJ asset added after the shapes")
	flagTransition = flag.Duration("transition", 250*time.Millisecond, "duration of the swap animation, 0 disables it")
	flagInterp     = flag.String("interp", "drive", "easing of the swap animation, drive or linear")
	flagPalette    = flag.String("palette", "default", "colors, default or material")
	flagFPS        = flag.Bool("fps", false, "draw frames per second")
)

type options struct {
	mode       render.Mode
	active     int
	transition time.Duration
	interp     func(float64) float64
	palette    engine.Palette
	fps        bool
	surfaces   []surface.Surface
}

// parseOptions builds options from the command line flags.
func parseOptions() (options, error) {
	var (
		opts options
		err  error
		ok   bool
	)
	if opts.mode, err = render.ParseMode(*flagMode); err != nil {
		return opts, err
	}
	if opts.palette, ok = engine.ParsePalette(*flagPalette); !ok {
		return opts, fmt.Errorf("unknown palette %q", *flagPalette)
	}
	if opts.interp, ok = engine.ParseInterp(*flagInterp); !ok {
		return opts, fmt.Errorf("unknown easing %q", *flagInterp)
	}
	k, err := surface.ParseKind(*flagShape)
	if err != nil {
		return opts, err
	}
	opts.active = int(k)
	opts.transition = *flagTransition
	opts.fps = *flagFPS

	for _, s := range surface.Defaults() {
		p, err := surface.NewParametric(s)
		if err != nil {
			return opts, err
		}
		opts.surfaces = append(opts.surfaces, p)
	}
	if *flagObj != "" {
		m, err := surface.OpenObj(*flagObj)
		if err != nil {
			return opts, err
		}
		opts.surfaces = append(opts.surfaces, m)
	}
	return opts, nil
}

// viewer owns the GL resources and engine for one visible window.
// Its methods are called from the event loop of a host.
type viewer struct {
	opts options

	ctx      gl.Context
	sz       size.Event
	renderer *render.Renderer
	engine   *engine.Engine
	filter   gesture.EventFilter

	images *glutil.Images
	fps    *debug.FPS
	last   time.Time
}

func (v *viewer) OnLifecycleEvent(e lifecycle.Event) error {
	switch e.Crosses(lifecycle.StageVisible) {
	case lifecycle.CrossOn:
		v.ctx, _ = e.DrawContext.(gl.Context)
		if v.opts.fps && v.ctx != nil {
			v.images = glutil.NewImages(v.ctx)
			v.fps = debug.NewFPS(v.images)
		}
		return v.reset()
	case lifecycle.CrossOff:
		v.release()
		if v.fps != nil {
			v.fps.Release()
			v.images.Release()
			v.fps, v.images = nil, nil
		}
		v.ctx = nil
	}
	return nil
}

func (v *viewer) OnSizeEvent(e size.Event) error {
	resized := e.Size() != v.sz.Size()
	v.sz = e
	if !resized {
		return nil
	}
	return v.reset()
}

// reset rebuilds the renderer and engine for the current context and size.
// The active surface survives.
func (v *viewer) reset() error {
	if v.ctx == nil || v.sz.WidthPx == 0 || v.sz.HeightPx == 0 {
		return nil
	}
	active := v.opts.active
	if v.engine != nil {
		active = v.engine.Active()
	}
	v.release()

	cfg := engine.DefaultConfig(v.sz.WidthPx, v.sz.HeightPx)
	cfg.Surfaces = v.opts.surfaces
	cfg.Active = active
	cfg.Transition = v.opts.transition
	cfg.Interp = v.opts.interp
	cfg.Palette = v.opts.palette

	v.renderer = render.New(v.ctx, v.opts.mode)
	e, err := engine.New(v.renderer, cfg)
	if err != nil {
		v.renderer.Release()
		v.renderer = nil
		return err
	}
	v.engine = e
	v.filter = gesture.EventFilter{Handler: e}
	v.last = time.Time{}
	log.Printf("%vx%v %v surfaces", v.sz.WidthPx, v.sz.HeightPx, len(cfg.Surfaces))
	return nil
}

func (v *viewer) release() {
	if v.renderer != nil {
		v.renderer.Release()
	}
	v.renderer, v.engine = nil, nil
}

// Ready reports whether Paint will draw.
func (v *viewer) Ready() bool { return v.engine != nil }

// Paint advances the animation by the time since the last frame and renders.
func (v *viewer) Paint(now time.Time) {
	if v.engine == nil {
		return
	}
	if !v.last.IsZero() {
		v.engine.UpdateAnimation(now.Sub(v.last))
	}
	v.last = now
	v.engine.Render()
	if v.fps != nil {
		v.ctx.Viewport(0, 0, v.sz.WidthPx, v.sz.HeightPx)
		v.fps.Draw(v.sz)
	}
}

// OnInputEvent feeds pointer events to the engine and reports whether e
// asks to quit.
func (v *viewer) OnInputEvent(e interface{}) (quit bool) {
	if k, ok := e.(key.Event); ok {
		return k.Code == key.CodeEscape && k.Direction != key.DirRelease
	}
	if v.engine == nil {
		return false
	}
	v.filter.Filter(e)
	return false
}

