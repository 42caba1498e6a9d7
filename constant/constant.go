package constant

const (
	SCREEN_WIDTH  = 320
	SCREEN_HEIGHT = 200
	SCREEN_PIXELS = SCREEN_WIDTH * SCREEN_HEIGHT
	PALETTE_SIZE  = 256 * 3
	NUM_KEYS      = 256
	MAX_EVENTS    = 64
	TICRATE       = 35
	DEFAULT_SCALE = 3
	MAX_SCALE     = 8
	WINDOW_TITLE  = "DOOM-SDL-port"
)

// Engine key codes. Printable keys are their lowercase ASCII value.
const (
	KEY_RIGHTARROW = 0xae
	KEY_LEFTARROW  = 0xac
	KEY_UPARROW    = 0xad
	KEY_DOWNARROW  = 0xaf
	KEY_ESCAPE     = 27
	KEY_ENTER      = 13
	KEY_TAB        = 9
	KEY_F1         = 0x80 + 0x3b
	KEY_F2         = 0x80 + 0x3c
	KEY_F3         = 0x80 + 0x3d
	KEY_F4         = 0x80 + 0x3e
	KEY_F5         = 0x80 + 0x3f
	KEY_F6         = 0x80 + 0x40
	KEY_F7         = 0x80 + 0x41
	KEY_F8         = 0x80 + 0x42
	KEY_F9         = 0x80 + 0x43
	KEY_F10        = 0x80 + 0x44
	KEY_F11        = 0x80 + 0x57
	KEY_F12        = 0x80 + 0x58
	KEY_BACKSPACE  = 127
	KEY_PAUSE      = 0xff
	KEY_EQUALS     = 0x3d
	KEY_MINUS      = 0x2d
	KEY_RSHIFT     = 0x80 + 0x36
	KEY_RCTRL      = 0x80 + 0x1d
	KEY_RALT       = 0x80 + 0x38
	KEY_LALT       = KEY_RALT
)

// Mouse button bits carried in Data1 of mouse events.
const (
	MOUSE_LEFT   = 1 << 0
	MOUSE_MIDDLE = 1 << 1
	MOUSE_RIGHT  = 1 << 2
)
