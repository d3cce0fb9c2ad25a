//go:build !glfw
// +build !glfw

// Shapeview shows a set of parametric shapes. Drag the main shape to rotate
// it and tap a thumbnail along the bottom to bring that shape forward.
//
// Build with -tags glfw to run in a desktop window instead of through
// golang.org/x/mobile/app.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("shapeview: ")
}

func main() {
	flag.Parse()
	opts, err := parseOptions()
	if err != nil {
		log.Fatal(err)
	}

	app.Main(func(a app.App) {
		v := &viewer{opts: opts}
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				log.Println(e)
				if err := v.OnLifecycleEvent(e); err != nil {
					log.Fatal(err)
				}
				a.Send(paint.Event{})
			case size.Event:
				if err := v.OnSizeEvent(e); err != nil {
					log.Fatal(err)
				}
			case paint.Event:
				if !v.Ready() || e.External {
					continue
				}
				v.Paint(time.Now())
				a.Publish()
				a.Send(paint.Event{})
			case touch.Event, mouse.Event, key.Event:
				if v.OnInputEvent(e) {
					os.Exit(0)
				}
			}
		}
	})
}
