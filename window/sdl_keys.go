//go:build sdl2

package window

import (
	"github.com/ushitora-anqou/doomvid/constant"
	"github.com/ushitora-anqou/doomvid/video"
	"github.com/veandco/go-sdl2/sdl"
)

var sdlKeymap = map[sdl.Keycode]int{
	sdl.K_LEFT:      constant.KEY_LEFTARROW,
	sdl.K_RIGHT:     constant.KEY_RIGHTARROW,
	sdl.K_DOWN:      constant.KEY_DOWNARROW,
	sdl.K_UP:        constant.KEY_UPARROW,
	sdl.K_ESCAPE:    constant.KEY_ESCAPE,
	sdl.K_RETURN:    constant.KEY_ENTER,
	sdl.K_KP_ENTER:  constant.KEY_ENTER,
	sdl.K_TAB:       constant.KEY_TAB,
	sdl.K_F1:        constant.KEY_F1,
	sdl.K_F2:        constant.KEY_F2,
	sdl.K_F3:        constant.KEY_F3,
	sdl.K_F4:        constant.KEY_F4,
	sdl.K_F5:        constant.KEY_F5,
	sdl.K_F6:        constant.KEY_F6,
	sdl.K_F7:        constant.KEY_F7,
	sdl.K_F8:        constant.KEY_F8,
	sdl.K_F9:        constant.KEY_F9,
	sdl.K_F10:       constant.KEY_F10,
	sdl.K_F11:       constant.KEY_F11,
	sdl.K_F12:       constant.KEY_F12,
	sdl.K_BACKSPACE: constant.KEY_BACKSPACE,
	sdl.K_DELETE:    constant.KEY_BACKSPACE,
	sdl.K_PAUSE:     constant.KEY_PAUSE,
	sdl.K_KP_EQUALS: constant.KEY_EQUALS,
	sdl.K_EQUALS:    constant.KEY_EQUALS,
	sdl.K_KP_MINUS:  constant.KEY_MINUS,
	sdl.K_MINUS:     constant.KEY_MINUS,
	sdl.K_LSHIFT:    constant.KEY_RSHIFT,
	sdl.K_RSHIFT:    constant.KEY_RSHIFT,
	sdl.K_LCTRL:     constant.KEY_RCTRL,
	sdl.K_RCTRL:     constant.KEY_RCTRL,
	sdl.K_LALT:      constant.KEY_RALT,
	sdl.K_RALT:      constant.KEY_RALT,
}

// SDLKeyToDoom maps an SDL keycode to the engine's key code. Keys with no
// engine equivalent report false.
func SDLKeyToDoom(sym sdl.Keycode) (int, bool) {
	if key, ok := sdlKeymap[sym]; ok {
		return key, true
	}
	return video.TranslateASCII(int(sym))
}
