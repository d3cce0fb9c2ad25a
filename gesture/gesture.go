// Package gesture reduces host touch and mouse events to a single pointer
// stream of down, move and up events.
package gesture

import (
	"fmt"
	"image"
	"time"

	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"
)

type Type uint8

const (
	TypeInvalid Type = iota
	TypeBegin
	TypeMove
	TypeEnd
)

func (t Type) String() string {
	switch t {
	case TypeBegin:
		return "begin"
	case TypeMove:
		return "move"
	case TypeEnd:
		return "end"
	case TypeInvalid:
		return "invalid"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

func typeFor(t interface{}) Type {
	switch t {
	case touch.TypeBegin, mouse.DirPress:
		return TypeBegin
	case touch.TypeEnd, mouse.DirRelease:
		return TypeEnd
	case touch.TypeMove, mouse.DirNone:
		return TypeMove
	default:
		return TypeInvalid
	}
}

// Event is a pointer event in screen pixels, origin top left. Prev is the
// location of the previous event in the same sequence.
type Event struct {
	Prev, At image.Point
	Type     Type
	Time     time.Time
}

func (e Event) GoString() string {
	return fmt.Sprintf("%T{Prev:%v At:%v Type:%-5v Time:%s}", e, e.Prev, e.At, e.Type, e.Time.Format("15:04:05.000"))
}

// Handler receives the filtered pointer stream.
type Handler interface {
	OnFingerDown(p image.Point)
	OnFingerMove(old, p image.Point)
	OnFingerUp(p image.Point)
}

var now = time.Now

// EventFilter tracks the first touch sequence, or a held mouse button, and
// dispatches it to Handler. Other touches, moves with no button held and
// moves that don't change position are dropped.
type EventFilter struct {
	Handler Handler

	tracking bool
	seq      touch.Sequence
	last     Event
}

// Filter returns the Event dispatched for e, or e unchanged if it was dropped.
func (f *EventFilter) Filter(e interface{}) interface{} {
	var (
		typ  Type
		seq  touch.Sequence
		x, y float32
	)
	switch e := e.(type) {
	case mouse.Event:
		typ, x, y = typeFor(e.Direction), e.X, e.Y
	case touch.Event:
		typ, seq, x, y = typeFor(e.Type), e.Sequence, e.X, e.Y
	default:
		return e
	}

	t := Event{At: image.Pt(int(x), int(y)), Type: typ, Time: now()}
	switch typ {
	case TypeBegin:
		if f.tracking {
			return e
		}
		f.tracking, f.seq = true, seq
		t.Prev = t.At
	case TypeMove:
		if !f.tracking || seq != f.seq || t.At == f.last.At {
			return e
		}
		t.Prev = f.last.At
	case TypeEnd:
		if !f.tracking || seq != f.seq {
			return e
		}
		f.tracking = false
		t.Prev = f.last.At
	default:
		return e
	}
	f.last = t

	if f.Handler != nil {
		switch t.Type {
		case TypeBegin:
			f.Handler.OnFingerDown(t.At)
		case TypeMove:
			f.Handler.OnFingerMove(t.Prev, t.At)
		case TypeEnd:
			f.Handler.OnFingerUp(t.At)
		}
	}
	return t
}

// Tracking reports whether a pointer is down.
func (f *EventFilter) Tracking() bool { return f.tracking }
