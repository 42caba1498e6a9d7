// Package display is the engine's view of the video layer: initialize and
// shut down graphics, begin a frame, drain input for the current tic,
// present the frame, read the framebuffer back and set the palette.
//
// Every call happens on the engine's main loop thread.
package display

import (
	"io"

	"github.com/ushitora-anqou/doomvid/config"
	"github.com/ushitora-anqou/doomvid/event"
	"github.com/ushitora-anqou/doomvid/util"
	"github.com/ushitora-anqou/doomvid/video"
	"github.com/ushitora-anqou/doomvid/window"
	"go.uber.org/zap"
)

type Display struct {
	wind    window.Window
	cfg     config.Config
	screen  *video.Screen
	events  event.Poster
	palette video.Palette
	gamma   *video.GammaTable
	ready   bool

	// Abort terminates the process on a fatal video error.
	Abort func(format string, v ...interface{})
}

// New wires a backend to the engine's framebuffer and event queue.
func New(wind window.Window, cfg config.Config, screen *video.Screen, events event.Poster) *Display {
	return &Display{
		wind:   wind,
		cfg:    cfg,
		screen: screen,
		events: events,
		gamma:  video.IdentityGamma,
		Abort:  util.Fatal,
	}
}

func (d *Display) Ready() bool {
	return d.ready
}

// InitGraphics creates the window, renderer and texture. Failure is fatal.
func (d *Display) InitGraphics() {
	if d.ready {
		return
	}
	if err := d.wind.Init(d.cfg); err != nil {
		d.Abort("%v", err)
		return
	}
	d.ready = true
	w, h := d.cfg.WindowSize()
	util.Logger().Info("graphics initialized",
		zap.String("title", d.cfg.Title),
		zap.Int("width", w),
		zap.Int("height", h))
}

func (d *Display) ShutdownGraphics() {
	if !d.ready {
		return
	}
	d.wind.Shutdown()
	d.ready = false
	util.Logger().Info("graphics shut down")
}

func (d *Display) StartFrame() {}

// StartTic drains every pending host event into the engine queue.
func (d *Display) StartTic() {
	if !d.ready {
		return
	}
	d.wind.PollEvents(d.events)
}

func (d *Display) UpdateNoBlit() {}

// FinishUpdate maps the framebuffer through the palette and shows it.
func (d *Display) FinishUpdate() {
	if !d.ready {
		return
	}
	if err := d.wind.Present(&d.palette, d.screen[:]); err != nil {
		d.Abort("%v", err)
	}
}

func (d *Display) ReadScreen(dst []byte) {
	d.screen.ReadScreen(dst)
}

// SetPalette rebuilds the palette from a 768-byte engine palette through
// the selected gamma row.
func (d *Display) SetPalette(src []byte) {
	if err := d.palette.Set(src, d.gamma); err != nil {
		d.Abort("%v", err)
	}
}

// SetGamma selects the gamma row used by later SetPalette calls.
func (d *Display) SetGamma(gamma *video.GammaTable) {
	if gamma == nil {
		gamma = video.IdentityGamma
	}
	d.gamma = gamma
}

func (d *Display) Palette() *video.Palette {
	return &d.palette
}

// Screenshot writes the current frame with the active palette.
func (d *Display) Screenshot(w io.Writer, format string) error {
	return video.WriteScreenshot(w, format, d.screen, &d.palette)
}
