//go:build ebiten

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ushitora-anqou/doomvid/constant"
)

var ebitenKeymap = map[ebiten.Key]int{
	ebiten.KeyArrowLeft:      constant.KEY_LEFTARROW,
	ebiten.KeyArrowRight:     constant.KEY_RIGHTARROW,
	ebiten.KeyArrowDown:      constant.KEY_DOWNARROW,
	ebiten.KeyArrowUp:        constant.KEY_UPARROW,
	ebiten.KeyEscape:         constant.KEY_ESCAPE,
	ebiten.KeyEnter:          constant.KEY_ENTER,
	ebiten.KeyNumpadEnter:    constant.KEY_ENTER,
	ebiten.KeyTab:            constant.KEY_TAB,
	ebiten.KeyF1:             constant.KEY_F1,
	ebiten.KeyF2:             constant.KEY_F2,
	ebiten.KeyF3:             constant.KEY_F3,
	ebiten.KeyF4:             constant.KEY_F4,
	ebiten.KeyF5:             constant.KEY_F5,
	ebiten.KeyF6:             constant.KEY_F6,
	ebiten.KeyF7:             constant.KEY_F7,
	ebiten.KeyF8:             constant.KEY_F8,
	ebiten.KeyF9:             constant.KEY_F9,
	ebiten.KeyF10:            constant.KEY_F10,
	ebiten.KeyF11:            constant.KEY_F11,
	ebiten.KeyF12:            constant.KEY_F12,
	ebiten.KeyBackspace:      constant.KEY_BACKSPACE,
	ebiten.KeyDelete:         constant.KEY_BACKSPACE,
	ebiten.KeyPause:          constant.KEY_PAUSE,
	ebiten.KeyEqual:          constant.KEY_EQUALS,
	ebiten.KeyNumpadEqual:    constant.KEY_EQUALS,
	ebiten.KeyMinus:          constant.KEY_MINUS,
	ebiten.KeyNumpadSubtract: constant.KEY_MINUS,
	ebiten.KeyShiftLeft:      constant.KEY_RSHIFT,
	ebiten.KeyShiftRight:     constant.KEY_RSHIFT,
	ebiten.KeyControlLeft:    constant.KEY_RCTRL,
	ebiten.KeyControlRight:   constant.KEY_RCTRL,
	ebiten.KeyAltLeft:        constant.KEY_RALT,
	ebiten.KeyAltRight:       constant.KEY_RALT,

	ebiten.KeySpace:        ' ',
	ebiten.KeyQuote:        '\'',
	ebiten.KeyComma:        ',',
	ebiten.KeyPeriod:       '.',
	ebiten.KeySlash:        '/',
	ebiten.KeySemicolon:    ';',
	ebiten.KeyBracketLeft:  '[',
	ebiten.KeyBackslash:    '\\',
	ebiten.KeyBracketRight: ']',
	ebiten.KeyBackquote:    '`',

	ebiten.KeyDigit0: '0',
	ebiten.KeyDigit1: '1',
	ebiten.KeyDigit2: '2',
	ebiten.KeyDigit3: '3',
	ebiten.KeyDigit4: '4',
	ebiten.KeyDigit5: '5',
	ebiten.KeyDigit6: '6',
	ebiten.KeyDigit7: '7',
	ebiten.KeyDigit8: '8',
	ebiten.KeyDigit9: '9',

	ebiten.KeyA: 'a',
	ebiten.KeyB: 'b',
	ebiten.KeyC: 'c',
	ebiten.KeyD: 'd',
	ebiten.KeyE: 'e',
	ebiten.KeyF: 'f',
	ebiten.KeyG: 'g',
	ebiten.KeyH: 'h',
	ebiten.KeyI: 'i',
	ebiten.KeyJ: 'j',
	ebiten.KeyK: 'k',
	ebiten.KeyL: 'l',
	ebiten.KeyM: 'm',
	ebiten.KeyN: 'n',
	ebiten.KeyO: 'o',
	ebiten.KeyP: 'p',
	ebiten.KeyQ: 'q',
	ebiten.KeyR: 'r',
	ebiten.KeyS: 's',
	ebiten.KeyT: 't',
	ebiten.KeyU: 'u',
	ebiten.KeyV: 'v',
	ebiten.KeyW: 'w',
	ebiten.KeyX: 'x',
	ebiten.KeyY: 'y',
	ebiten.KeyZ: 'z',
}

// EbitenKeyToDoom maps an ebiten key to the engine's key code.
func EbitenKeyToDoom(k ebiten.Key) (int, bool) {
	key, ok := ebitenKeymap[k]
	return key, ok
}
