package window

import (
	"github.com/ushitora-anqou/doomvid/config"
	"github.com/ushitora-anqou/doomvid/constant"
	"github.com/ushitora-anqou/doomvid/event"
	"github.com/ushitora-anqou/doomvid/util"
	"github.com/ushitora-anqou/doomvid/video"
	"go.uber.org/zap"
)

// HeadlessWindow renders into memory and replays injected events. Its
// clock only advances through Delay.
type HeadlessWindow struct {
	cfg     config.Config
	open    bool
	pixels  []uint8
	pending []event.Event
	frames  int
	now     int64
	closing bool

	// InitErr, when set, makes Init fail.
	InitErr error
}

func NewHeadlessWindow() *HeadlessWindow {
	return &HeadlessWindow{}
}

func (wind *HeadlessWindow) Init(cfg config.Config) error {
	if wind.InitErr != nil {
		return video.Errorf("InitGraphics", wind.InitErr, "Window could not be created")
	}
	wind.cfg = cfg
	wind.pixels = make([]uint8, 4*constant.SCREEN_PIXELS)
	wind.open = true
	util.Logger().Info("headless window ready", zap.Int("scale", cfg.Scale))
	return nil
}

func (wind *HeadlessWindow) Shutdown() {
	wind.open = false
}

func (wind *HeadlessWindow) Open() bool {
	return wind.open
}

// Inject queues an event for the next PollEvents.
func (wind *HeadlessWindow) Inject(ev ...event.Event) {
	wind.pending = append(wind.pending, ev...)
}

// RequestClose behaves like the user closing the window.
func (wind *HeadlessWindow) RequestClose() {
	wind.closing = true
}

func (wind *HeadlessWindow) PollEvents(poster event.Poster) bool {
	if !wind.open {
		return false
	}
	if wind.closing {
		wind.closing = false
		wind.cfg.Quit()
	}
	for _, ev := range wind.pending {
		util.Trace("headless event %v", ev)
		poster.Post(ev)
	}
	wind.pending = wind.pending[:0]
	return true
}

func (wind *HeadlessWindow) Present(pal *video.Palette, screen []byte) error {
	if !wind.open {
		return video.Errorf("FinishUpdate", nil, "window is not open")
	}
	if err := video.ExpandRGBA(wind.pixels, screen, pal); err != nil {
		return err
	}
	wind.frames++
	return nil
}

// Pixels returns the last presented frame as RGBA.
func (wind *HeadlessWindow) Pixels() []uint8 {
	return wind.pixels
}

func (wind *HeadlessWindow) Frames() int {
	return wind.frames
}

func (wind *HeadlessWindow) Ticks() int64 {
	return wind.now
}

func (wind *HeadlessWindow) Delay(us int64) {
	if us > 0 {
		wind.now += us
	}
}
