package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ushitora-anqou/doomvid/config"
	"github.com/ushitora-anqou/doomvid/constant"
	"github.com/ushitora-anqou/doomvid/event"
	"github.com/ushitora-anqou/doomvid/window"
)

func startDemo(t *testing.T) (*Demo, *window.HeadlessWindow) {
	t.Helper()
	wind := window.NewHeadlessWindow()
	demo := newDemo(wind, config.Default())
	demo.disp.InitGraphics()
	require.True(t, demo.disp.Ready())
	demo.disp.SetPalette(demo.base)
	return demo, wind
}

func TestDemoEscapeQuits(t *testing.T) {
	demo, wind := startDemo(t)
	demo.Tic()
	assert.False(t, demo.Quit())

	wind.Inject(event.Event{Type: event.KeyDown, Data1: constant.KEY_ESCAPE})
	demo.Tic()
	assert.True(t, demo.Quit())
}

func TestDemoFlashRestoresPalette(t *testing.T) {
	demo, wind := startDemo(t)
	before := *demo.disp.Palette()

	wind.Inject(event.Event{Type: event.KeyDown, Data1: 'f'})
	demo.Tic()
	assert.NotEqual(t, before, *demo.disp.Palette())

	for i := 0; i < flashTics; i++ {
		demo.Tic()
	}
	assert.Equal(t, before, *demo.disp.Palette())
}

func TestDemoMouseMovesCrosshair(t *testing.T) {
	demo, wind := startDemo(t)
	x, y := demo.x, demo.y

	wind.Inject(event.Event{Type: event.Mouse, Data2: 5 << 4, Data3: 2 << 4})
	demo.Tic()
	assert.Equal(t, x+5, demo.x)
	assert.Equal(t, y-2, demo.y)
	assert.Equal(t, uint8(0), demo.screen.At(demo.x, demo.y))

	demo.Frame()
	assert.Equal(t, 1, wind.Frames())
}

func TestDemoScreenshot(t *testing.T) {
	demo, _ := startDemo(t)
	demo.shotPath = filepath.Join(t.TempDir(), "shot.bmp")
	demo.Tic()

	require.NoError(t, demo.Screenshot())
	info, err := os.Stat(demo.shotPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(constant.SCREEN_PIXELS))
	assert.Equal(t, 1, demo.shotsTaken)
}

func TestDemoWindowCloseQuits(t *testing.T) {
	demo, wind := startDemo(t)
	demo.Tic()
	assert.False(t, demo.Quit())

	wind.RequestClose()
	demo.Tic()
	assert.True(t, demo.Quit())
}
