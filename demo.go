package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ushitora-anqou/doomvid/constant"
	"github.com/ushitora-anqou/doomvid/display"
	"github.com/ushitora-anqou/doomvid/event"
	"github.com/ushitora-anqou/doomvid/util"
	"github.com/ushitora-anqou/doomvid/video"
	"go.uber.org/zap"
)

const flashTics = 8

// Demo stands in for the game: it draws a test pattern, flashes the palette
// on demand and moves a crosshair with the mouse.
type Demo struct {
	disp       *display.Display
	screen     *video.Screen
	queue      *event.Queue
	base       []byte
	flash      []byte
	flashLeft  int
	tic        int
	x, y       int
	quit       bool
	shotPath   string
	shotsTaken int
}

func NewDemo(disp *display.Display, screen *video.Screen, queue *event.Queue) *Demo {
	base := make([]byte, constant.PALETTE_SIZE)
	flash := make([]byte, constant.PALETTE_SIZE)
	for i := 0; i < 256; i++ {
		r, g, b := byte(i), byte((i*3)&0xff), byte(255-i)
		base[i*3+0], base[i*3+1], base[i*3+2] = r, g, b
		flash[i*3+0] = byte((int(r) + 255) / 2)
		flash[i*3+1] = g / 2
		flash[i*3+2] = b / 2
	}
	return &Demo{
		disp:   disp,
		screen: screen,
		queue:  queue,
		base:   base,
		flash:  flash,
		x:      constant.SCREEN_WIDTH / 2,
		y:      constant.SCREEN_HEIGHT / 2,
	}
}

func (d *Demo) RequestQuit() {
	d.quit = true
}

func (d *Demo) Quit() bool {
	return d.quit
}

// Tic runs one engine step: drain input, react, redraw the framebuffer.
func (d *Demo) Tic() {
	d.disp.StartTic()
	d.queue.Drain(d.respond)

	if d.flashLeft > 0 {
		d.flashLeft--
		if d.flashLeft == 0 {
			d.disp.SetPalette(d.base)
		}
	}
	d.draw()
	d.tic++
}

// Frame presents what the last tic drew.
func (d *Demo) Frame() {
	d.disp.StartFrame()
	d.disp.UpdateNoBlit()
	d.disp.FinishUpdate()
}

func (d *Demo) respond(ev event.Event) {
	util.Trace("demo event %v", ev)
	switch ev.Type {
	case event.KeyDown:
		switch ev.Data1 {
		case constant.KEY_ESCAPE:
			d.quit = true
		case 'f':
			d.flashLeft = flashTics
			d.disp.SetPalette(d.flash)
		case constant.KEY_F12:
			if err := d.Screenshot(); err != nil {
				util.Logger().Error("screenshot failed", zap.Error(err))
			}
		}
	case event.Mouse:
		d.x = util.Clamp(d.x+ev.Data2>>4, 0, constant.SCREEN_WIDTH-1)
		d.y = util.Clamp(d.y-ev.Data3>>4, 0, constant.SCREEN_HEIGHT-1)
	}
}

func (d *Demo) draw() {
	for y := 0; y < constant.SCREEN_HEIGHT; y++ {
		for x := 0; x < constant.SCREEN_WIDTH; x++ {
			d.screen.Set(x, y, uint8(x+y+d.tic))
		}
	}
	for i := -4; i <= 4; i++ {
		d.screen.Set(d.x+i, d.y, 0)
		d.screen.Set(d.x, d.y+i, 0)
	}
}

// Screenshot writes the current frame to the configured path. The format
// follows the file extension.
func (d *Demo) Screenshot() error {
	if d.shotPath == "" {
		return nil
	}
	file, err := os.Create(d.shotPath)
	if err != nil {
		return err
	}
	defer file.Close()
	format := strings.TrimPrefix(filepath.Ext(d.shotPath), ".")
	if err := d.disp.Screenshot(file, format); err != nil {
		return err
	}
	d.shotsTaken++
	util.Logger().Info("screenshot written", zap.String("path", d.shotPath))
	return nil
}
