// Package event defines the engine-side input events produced by the
// window backends.
package event

import "fmt"

type Type int

const (
	KeyDown Type = iota
	KeyUp
	Mouse
	Joystick
)

func (t Type) String() string {
	switch t {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case Mouse:
		return "mouse"
	case Joystick:
		return "joystick"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Event is what the engine's responders consume. For key events Data1 is
// the engine key code. For mouse events Data1 is the button mask and
// Data2/Data3 the scaled relative motion.
type Event struct {
	Type                Type
	Data1, Data2, Data3 int
}

func (ev Event) String() string {
	return fmt.Sprintf("%s(%d, %d, %d)", ev.Type, ev.Data1, ev.Data2, ev.Data3)
}

// Poster accepts translated events. The engine's queue implements it.
type Poster interface {
	Post(ev Event)
}

// PosterFunc adapts a plain function to Poster.
type PosterFunc func(ev Event)

func (f PosterFunc) Post(ev Event) {
	f(ev)
}
