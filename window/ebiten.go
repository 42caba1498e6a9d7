//go:build ebiten

package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ushitora-anqou/doomvid/config"
	"github.com/ushitora-anqou/doomvid/constant"
	"github.com/ushitora-anqou/doomvid/event"
	"github.com/ushitora-anqou/doomvid/util"
	"github.com/ushitora-anqou/doomvid/video"
)

func EbitenInitialize(cfg config.Config) error {
	width, height := cfg.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TicRate)
	ebiten.SetVsyncEnabled(cfg.VSync)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetWindowClosingHandled(true)
	if cfg.GrabMouse {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	return nil
}

// EbitenWindow is driven from ebiten's Update and Draw callbacks: PollEvents
// must be called from Update, Draw from Draw.
type EbitenWindow struct {
	cfg    config.Config
	frame  *ebiten.Image
	pixels []uint8
	open   bool
	start  time.Time
	input  ebitenInput
}

func NewEbitenWindow() *EbitenWindow {
	return &EbitenWindow{start: time.Now()}
}

func (wind *EbitenWindow) Init(cfg config.Config) error {
	if err := EbitenInitialize(cfg); err != nil {
		return video.Errorf("InitGraphics", err, "Window could not be created")
	}
	wind.cfg = cfg
	wind.frame = ebiten.NewImage(constant.SCREEN_WIDTH, constant.SCREEN_HEIGHT)
	wind.pixels = make([]uint8, 4*constant.SCREEN_PIXELS)
	wind.open = true
	return nil
}

func (wind *EbitenWindow) Shutdown() {
	if !wind.open {
		return
	}
	wind.frame.Deallocate()
	wind.open = false
}

// ebitenInput is one Update's worth of polled input.
type ebitenInput struct {
	pressed, released []ebiten.Key
	buttons           uint8
	buttonsChanged    bool
	prevX, prevY      int
	x, y              int
	cursorSeen        bool
}

// translateEbitenInput turns polled input into engine events: key edges
// first, then a button event if any button changed, then scaled motion.
// Motion needs a previous cursor position to be meaningful.
func translateEbitenInput(in *ebitenInput, scale int, poster event.Poster) {
	for _, k := range in.pressed {
		if key, ok := EbitenKeyToDoom(k); ok {
			poster.Post(event.Event{Type: event.KeyDown, Data1: key})
		}
	}
	for _, k := range in.released {
		if key, ok := EbitenKeyToDoom(k); ok {
			poster.Post(event.Event{Type: event.KeyUp, Data1: key})
		}
	}
	if in.buttonsChanged {
		poster.Post(video.MouseButtons(in.buttons))
	}
	if in.cursorSeen {
		if ev, ok := video.MouseMotion(in.buttons, in.x-in.prevX, in.y-in.prevY, scale); ok {
			poster.Post(ev)
		}
	}
}

func mouseButtonEdge(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b) || inpututil.IsMouseButtonJustReleased(b)
}

func (wind *EbitenWindow) PollEvents(poster event.Poster) bool {
	if !wind.open {
		return false
	}
	if ebiten.IsWindowBeingClosed() {
		util.Trace("ebiten quit requested")
		wind.cfg.Quit()
	}

	in := &wind.input
	in.pressed = inpututil.AppendJustPressedKeys(in.pressed[:0])
	in.released = inpututil.AppendJustReleasedKeys(in.released[:0])
	in.buttons = util.BoolToU8(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))<<0 |
		util.BoolToU8(ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle))<<1 |
		util.BoolToU8(ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))<<2
	in.buttonsChanged = mouseButtonEdge(ebiten.MouseButtonLeft) ||
		mouseButtonEdge(ebiten.MouseButtonMiddle) ||
		mouseButtonEdge(ebiten.MouseButtonRight)
	in.prevX, in.prevY = in.x, in.y
	in.x, in.y = ebiten.CursorPosition()

	translateEbitenInput(in, wind.cfg.Scale, poster)
	in.cursorSeen = true
	return true
}

func (wind *EbitenWindow) Present(pal *video.Palette, screen []byte) error {
	if !wind.open {
		return video.Errorf("FinishUpdate", nil, "window is not open")
	}
	if err := video.ExpandRGBA(wind.pixels, screen, pal); err != nil {
		return err
	}
	wind.frame.WritePixels(wind.pixels)
	return nil
}

// Draw blits the last presented frame, scaled to the window.
func (wind *EbitenWindow) Draw(screen *ebiten.Image) {
	if !wind.open {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(wind.cfg.Scale), float64(wind.cfg.Scale))
	if wind.cfg.ScaleQuality == "nearest" {
		op.Filter = ebiten.FilterNearest
	} else {
		op.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(wind.frame, op)
}

func (wind *EbitenWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	return wind.cfg.WindowSize()
}

func (wind *EbitenWindow) Ticks() int64 {
	return time.Since(wind.start).Microseconds()
}

// Delay does nothing; ebiten paces Update itself.
func (wind *EbitenWindow) Delay(us int64) {}
