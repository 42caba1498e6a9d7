//go:build sdl2

package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ushitora-anqou/doomvid/config"
	"github.com/ushitora-anqou/doomvid/constant"
	"github.com/ushitora-anqou/doomvid/event"
	"github.com/veandco/go-sdl2/sdl"
)

var _ Window = (*SDLWindow)(nil)

func TestSDLKeyToDoom(t *testing.T) {
	table := []struct {
		sym sdl.Keycode
		key int
		ok  bool
	}{
		{sdl.K_LEFT, constant.KEY_LEFTARROW, true},
		{sdl.K_UP, constant.KEY_UPARROW, true},
		{sdl.K_RETURN, constant.KEY_ENTER, true},
		{sdl.K_F11, constant.KEY_F11, true},
		{sdl.K_DELETE, constant.KEY_BACKSPACE, true},
		{sdl.K_KP_MINUS, constant.KEY_MINUS, true},
		{sdl.K_LSHIFT, constant.KEY_RSHIFT, true},
		{sdl.K_LCTRL, constant.KEY_RCTRL, true},
		{sdl.K_RALT, constant.KEY_RALT, true},
		{sdl.K_a, 'a', true},
		{sdl.K_SPACE, ' ', true},
		{sdl.K_COMMA, ',', true},
		{sdl.K_CAPSLOCK, 0, false},
		{sdl.K_HOME, 0, false},
	}
	for _, entry := range table {
		key, ok := SDLKeyToDoom(entry.sym)
		if key != entry.key || ok != entry.ok {
			t.Fatalf("SDLKeyToDoom(%#x): (got: %#x, %v) (expected: %#x, %v)", int(entry.sym), key, ok, entry.key, entry.ok)
		}
	}
}

func TestSDLInitFailureReleasesSDL(t *testing.T) {
	// The dummy driver has no accelerated renderer.
	t.Setenv("SDL_VIDEODRIVER", "dummy")
	wind := NewSDLWindow()
	err := wind.Init(config.Default())
	if err == nil {
		wind.Shutdown()
		t.Skip("dummy video driver offered an accelerated renderer")
	}
	assert.ErrorContains(t, err, "could not be created")
	assert.Equal(t, uint32(0), uint32(sdl.WasInit(sdl.INIT_VIDEO)))
	assert.False(t, wind.PollEvents(event.PosterFunc(func(event.Event) {})))
}

func TestTranslateSDLEvent(t *testing.T) {
	table := []struct {
		in      sdl.Event
		buttons uint8
		out     event.Event
		ok      bool
	}{
		{
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}},
			0, event.Event{Type: event.KeyDown, Data1: constant.KEY_ESCAPE}, true,
		},
		{
			&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_w}},
			0, event.Event{Type: event.KeyUp, Data1: 'w'}, true,
		},
		{
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_CAPSLOCK}},
			0, event.Event{}, false,
		},
		{
			&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT},
			constant.MOUSE_LEFT, event.Event{Type: event.Mouse, Data1: constant.MOUSE_LEFT}, true,
		},
		{
			&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, XRel: 6, YRel: -3},
			0, event.Event{Type: event.Mouse, Data2: 2 << 4, Data3: 1 << 4}, true,
		},
		{
			&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, XRel: 1, YRel: 1},
			0, event.Event{Type: event.Mouse}, false,
		},
		{
			&sdl.WindowEvent{Type: sdl.WINDOWEVENT},
			0, event.Event{}, false,
		},
	}
	for _, entry := range table {
		out, ok := translateSDLEvent(entry.in, entry.buttons, 3)
		assert.Equal(t, entry.ok, ok, "%T", entry.in)
		assert.Equal(t, entry.out, out, "%T", entry.in)
	}
}
