package video

import "github.com/ushitora-anqou/doomvid/constant"

// Screen is the engine's primary framebuffer of palette indices.
type Screen [constant.SCREEN_PIXELS]byte

func NewScreen() *Screen {
	return &Screen{}
}

func (s *Screen) Pixels() []byte {
	return s[:]
}

func (s *Screen) Set(x, y int, idx uint8) {
	if x < 0 || y < 0 || x >= constant.SCREEN_WIDTH || y >= constant.SCREEN_HEIGHT {
		return
	}
	s[y*constant.SCREEN_WIDTH+x] = idx
}

// At returns 0 outside the frame, matching Set which ignores such writes.
func (s *Screen) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= constant.SCREEN_WIDTH || y >= constant.SCREEN_HEIGHT {
		return 0
	}
	return s[y*constant.SCREEN_WIDTH+x]
}

// ReadScreen copies one full frame into dst and returns the number of
// bytes copied.
func (s *Screen) ReadScreen(dst []byte) int {
	return copy(dst, s[:])
}
