package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ushitora-anqou/doomvid/constant"
	"github.com/ushitora-anqou/doomvid/event"
)

func TestTranslateASCII(t *testing.T) {
	table := []struct {
		in, out int
		ok      bool
	}{
		{'a', 'a', true},
		{'A', 'a', true},
		{'Z', 'z', true},
		{' ', ' ', true},
		{'~', '~', true},
		{'1', '1', true},
		{constant.KEY_TAB, constant.KEY_TAB, true},
		{0xfe, 0xfe, true},
		{256, 0, false},
		{0x40000050, 0, false},
		{-1, 0, false},
	}
	for _, entry := range table {
		out, ok := TranslateASCII(entry.in)
		if out != entry.out || ok != entry.ok {
			t.Fatalf("TranslateASCII(%#x): (got: %#x, %v) (expected: %#x, %v)", entry.in, out, ok, entry.out, entry.ok)
		}
	}
}

func TestMouseMotion(t *testing.T) {
	table := []struct {
		buttons           uint8
		xrel, yrel, scale int
		ev                event.Event
		ok                bool
	}{
		{0, 3, 6, 3, event.Event{Type: event.Mouse, Data2: 16, Data3: -32}, true},
		{constant.MOUSE_LEFT, -9, -3, 3, event.Event{Type: event.Mouse, Data1: 1, Data2: -48, Data3: 16}, true},
		{0, 2, -2, 3, event.Event{Type: event.Mouse}, false},
		{0, 1, 0, 0, event.Event{Type: event.Mouse, Data2: 16}, true},
	}
	for _, entry := range table {
		ev, ok := MouseMotion(entry.buttons, entry.xrel, entry.yrel, entry.scale)
		assert.Equal(t, entry.ok, ok)
		assert.Equal(t, entry.ev, ev)
	}
}

func TestMouseButtons(t *testing.T) {
	ev := MouseButtons(constant.MOUSE_LEFT | constant.MOUSE_RIGHT)
	assert.Equal(t, event.Event{Type: event.Mouse, Data1: 5}, ev)
}
