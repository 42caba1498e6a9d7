//go:build ebiten

package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/ushitora-anqou/doomvid/constant"
	"github.com/ushitora-anqou/doomvid/event"
)

var _ Window = (*EbitenWindow)(nil)

func TestEbitenKeyToDoom(t *testing.T) {
	table := []struct {
		in  ebiten.Key
		key int
		ok  bool
	}{
		{ebiten.KeyArrowRight, constant.KEY_RIGHTARROW, true},
		{ebiten.KeyEnter, constant.KEY_ENTER, true},
		{ebiten.KeyF10, constant.KEY_F10, true},
		{ebiten.KeyShiftLeft, constant.KEY_RSHIFT, true},
		{ebiten.KeyNumpadSubtract, constant.KEY_MINUS, true},
		{ebiten.KeyQ, 'q', true},
		{ebiten.KeyDigit7, '7', true},
		{ebiten.KeyBracketLeft, '[', true},
		{ebiten.KeyCapsLock, 0, false},
		{ebiten.KeyHome, 0, false},
	}
	for _, entry := range table {
		key, ok := EbitenKeyToDoom(entry.in)
		if key != entry.key || ok != entry.ok {
			t.Fatalf("EbitenKeyToDoom(%v): (got: %#x, %v) (expected: %#x, %v)", entry.in, key, ok, entry.key, entry.ok)
		}
	}
}

func TestEbitenKeymapFitsKeyTable(t *testing.T) {
	for k, key := range ebitenKeymap {
		if key <= 0 || key >= constant.NUM_KEYS {
			t.Fatalf("%v maps to %#x, outside the engine key table", k, key)
		}
	}
}

func TestTranslateEbitenInput(t *testing.T) {
	table := []struct {
		name string
		in   ebitenInput
		out  []event.Event
	}{
		{
			"key edges",
			ebitenInput{
				pressed:  []ebiten.Key{ebiten.KeyW, ebiten.KeyCapsLock},
				released: []ebiten.Key{ebiten.KeyEscape},
			},
			[]event.Event{
				{Type: event.KeyDown, Data1: 'w'},
				{Type: event.KeyUp, Data1: constant.KEY_ESCAPE},
			},
		},
		{
			"held button without an edge",
			ebitenInput{buttons: constant.MOUSE_LEFT},
			[]event.Event{},
		},
		{
			"button edge",
			ebitenInput{buttons: constant.MOUSE_LEFT | constant.MOUSE_RIGHT, buttonsChanged: true},
			[]event.Event{{Type: event.Mouse, Data1: 5}},
		},
		{
			"first poll has no motion",
			ebitenInput{x: 300, y: 200},
			[]event.Event{},
		},
		{
			"motion scaled down",
			ebitenInput{prevX: 100, prevY: 100, x: 106, y: 97, cursorSeen: true},
			[]event.Event{{Type: event.Mouse, Data2: 2 << 4, Data3: 1 << 4}},
		},
		{
			"motion under one pixel",
			ebitenInput{prevX: 100, prevY: 100, x: 102, y: 101, cursorSeen: true},
			[]event.Event{},
		},
	}
	for _, entry := range table {
		got := []event.Event{}
		translateEbitenInput(&entry.in, 3, event.PosterFunc(func(ev event.Event) {
			got = append(got, ev)
		}))
		assert.Equal(t, entry.out, got, entry.name)
	}
}
