package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ushitora-anqou/doomvid/constant"
)

func TestReadScreen(t *testing.T) {
	screen := NewScreen()
	screen.Set(0, 0, 1)
	screen.Set(319, 199, 2)
	screen.Set(-1, 0, 9)  // ignored
	screen.Set(0, 200, 9) // ignored

	dst := make([]byte, constant.SCREEN_PIXELS)
	assert.Equal(t, constant.SCREEN_PIXELS, screen.ReadScreen(dst))
	assert.Equal(t, byte(1), dst[0])
	assert.Equal(t, byte(2), dst[constant.SCREEN_PIXELS-1])
	assert.Equal(t, screen[:], dst)
}

func TestScreenAtOutOfRange(t *testing.T) {
	screen := NewScreen()
	for i := range screen {
		screen[i] = 0xff
	}
	table := [][2]int{{-1, 0}, {0, -1}, {constant.SCREEN_WIDTH, 0}, {0, constant.SCREEN_HEIGHT}}
	for _, entry := range table {
		assert.Equal(t, uint8(0), screen.At(entry[0], entry[1]), "At(%d, %d)", entry[0], entry[1])
	}
	assert.Equal(t, uint8(0xff), screen.At(constant.SCREEN_WIDTH-1, constant.SCREEN_HEIGHT-1))
}
