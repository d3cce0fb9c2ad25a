//go:build glfw
// +build glfw

package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/geom"
	"golang.org/x/mobile/gl"
)

var (
	flagWidth  = flag.Int("width", 480, "window width")
	flagHeight = flag.Int("height", 640, "window height")
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("shapeview: ")
	runtime.LockOSThread()
}

// main creates an OpenGL ES 2 window. GL calls issued by the event loop are
// executed here, on the thread owning the context.
func main() {
	flag.Parse()
	opts, err := parseOptions()
	if err != nil {
		log.Fatal(err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	glfw.WindowHint(glfw.Samples, 4)
	window, err := glfw.CreateWindow(*flagWidth, *flagHeight, "shapeview", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	glctx, worker := gl.NewContext()
	events := make(chan interface{}, 256)
	swap := make(chan bool)

	// callbacks run inside PollEvents while loop waits on swap, so a full
	// queue drops events instead of blocking.
	send := func(e interface{}) {
		select {
		case events <- e:
		default:
		}
	}

	sizeEvent := func() size.Event {
		w, h := window.GetFramebufferSize()
		ww, _ := window.GetSize()
		ppp := float32(1)
		if ww > 0 {
			ppp = float32(w) / float32(ww)
		}
		return size.Event{
			WidthPx:     w,
			HeightPx:    h,
			WidthPt:     geom.Pt(float32(w) / ppp),
			HeightPt:    geom.Pt(float32(h) / ppp),
			PixelsPerPt: ppp,
			Orientation: size.OrientationUnknown,
		}
	}
	cursor := func() (x, y float32) {
		cx, cy := window.GetCursorPos()
		sz := sizeEvent()
		return float32(cx) * sz.PixelsPerPt, float32(cy) * sz.PixelsPerPt
	}

	window.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, _ glfw.ModifierKey) {
		if b != glfw.MouseButtonLeft {
			return
		}
		dir := mouse.DirPress
		if a == glfw.Release {
			dir = mouse.DirRelease
		}
		x, y := cursor()
		send(mouse.Event{X: x, Y: y, Button: mouse.ButtonLeft, Direction: dir})
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, cx, cy float64) {
		var b mouse.Button
		if window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press {
			b = mouse.ButtonLeft
		}
		x, y := cursor()
		send(mouse.Event{X: x, Y: y, Button: b})
	})
	window.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, a glfw.Action, _ glfw.ModifierKey) {
		if k == glfw.KeyEscape && a == glfw.Press {
			send(key.Event{Code: key.CodeEscape, Direction: key.DirPress})
		}
	})
	window.SetFramebufferSizeCallback(func(*glfw.Window, int, int) {
		send(sizeEvent())
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		loop(&viewer{opts: opts}, glctx, sizeEvent(), events, swap)
	}()

	workAvailable := worker.WorkAvailable()
	for {
		select {
		case <-done:
			return
		case <-workAvailable:
			worker.DoWork()
		case <-swap:
			window.SwapBuffers()
			glfw.PollEvents()
			if window.ShouldClose() {
				send(key.Event{Code: key.CodeEscape, Direction: key.DirPress})
			}
			swap <- true
		}
	}
}

// loop drives v from events, painting a frame whenever the event queue is
// empty. Each frame is presented by a round trip on swap.
func loop(v *viewer, glctx gl.Context, sz size.Event, events <-chan interface{}, swap chan bool) {
	on := lifecycle.Event{From: lifecycle.StageDead, To: lifecycle.StageFocused, DrawContext: glctx}
	if err := v.OnLifecycleEvent(on); err != nil {
		log.Fatal(err)
	}
	if err := v.OnSizeEvent(sz); err != nil {
		log.Fatal(err)
	}
	defer v.OnLifecycleEvent(lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead})

	for {
		select {
		case e := <-events:
			switch e := e.(type) {
			case size.Event:
				if err := v.OnSizeEvent(e); err != nil {
					log.Fatal(err)
				}
			default:
				if v.OnInputEvent(e) {
					return
				}
			}
		default:
			v.Paint(time.Now())
			swap <- true
			<-swap
		}
	}
}
