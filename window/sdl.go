//go:build sdl2

package window

import (
	"github.com/ushitora-anqou/doomvid/config"
	"github.com/ushitora-anqou/doomvid/constant"
	"github.com/ushitora-anqou/doomvid/event"
	"github.com/ushitora-anqou/doomvid/util"
	"github.com/ushitora-anqou/doomvid/video"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
)

const mouseButtonMask = constant.MOUSE_LEFT | constant.MOUSE_MIDDLE | constant.MOUSE_RIGHT

func SDLInitialize() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return video.Errorf("InitGraphics", err, "SDL failed to initialize")
	}
	return nil
}

type SDLWindow struct {
	cfg      config.Config
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	dest     sdl.Rect
}

func NewSDLWindow() *SDLWindow {
	return &SDLWindow{}
}

func (wind *SDLWindow) Init(cfg config.Config) error {
	if err := SDLInitialize(); err != nil {
		return err
	}

	width, height := cfg.WindowSize()
	var flags uint32 = sdl.WINDOW_SHOWN
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(width),
		int32(height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return video.Errorf("InitGraphics", err, "Window could not be created")
	}

	var rendererFlags uint32 = sdl.RENDERER_ACCELERATED
	if cfg.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(window, -1, rendererFlags)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return video.Errorf("InitGraphics", err, "Renderer could not be created")
	}
	if cfg.Fullscreen {
		// Keep the aspect ratio and let SDL letterbox.
		renderer.SetLogicalSize(int32(width), int32(height))
	}

	// The hint only affects textures created after it.
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, cfg.ScaleQuality)

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB24,
		sdl.TEXTUREACCESS_STREAMING,
		constant.SCREEN_WIDTH,
		constant.SCREEN_HEIGHT,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return video.Errorf("InitGraphics", err, "Texture could not be created")
	}

	if cfg.GrabMouse {
		sdl.SetRelativeMouseMode(true)
	}

	wind.cfg = cfg
	wind.window = window
	wind.renderer = renderer
	wind.texture = texture
	wind.dest = sdl.Rect{X: 0, Y: 0, W: int32(width), H: int32(height)}
	util.Logger().Info("SDL window ready",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.String("quality", cfg.ScaleQuality))
	return nil
}

func (wind *SDLWindow) Shutdown() {
	if wind.window == nil {
		return
	}
	wind.texture.Destroy()
	wind.renderer.Destroy()
	wind.window.Destroy()
	wind.texture, wind.renderer, wind.window = nil, nil, nil
	sdl.Quit()
}

func (wind *SDLWindow) PollEvents(poster event.Poster) bool {
	if wind.window == nil {
		return false
	}
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if _, ok := ev.(*sdl.QuitEvent); ok {
			util.Trace("SDL quit requested")
			wind.cfg.Quit()
			continue
		}
		_, _, state := sdl.GetMouseState()
		if dev, ok := translateSDLEvent(ev, uint8(state)&mouseButtonMask, wind.cfg.Scale); ok {
			util.Trace("SDL event %v", dev)
			poster.Post(dev)
		}
	}
	return true
}

// translateSDLEvent converts one host event. buttons is the current mouse
// button mask.
func translateSDLEvent(ev sdl.Event, buttons uint8, scale int) (event.Event, bool) {
	switch e := ev.(type) {
	case *sdl.KeyboardEvent:
		key, ok := SDLKeyToDoom(e.Keysym.Sym)
		if !ok {
			return event.Event{}, false
		}
		switch e.Type {
		case sdl.KEYDOWN:
			return event.Event{Type: event.KeyDown, Data1: key}, true
		case sdl.KEYUP:
			return event.Event{Type: event.KeyUp, Data1: key}, true
		}

	case *sdl.MouseButtonEvent:
		return video.MouseButtons(buttons), true

	case *sdl.MouseMotionEvent:
		return video.MouseMotion(buttons, int(e.XRel), int(e.YRel), scale)
	}
	return event.Event{}, false
}

func (wind *SDLWindow) Present(pal *video.Palette, screen []byte) error {
	renderer := wind.renderer
	if renderer == nil {
		return video.Errorf("FinishUpdate", nil, "window is not open")
	}

	renderer.SetDrawColor(0xff, 0xff, 0xff, 0xff)
	renderer.Clear()

	// Update the texture
	pixels, pitch, err := wind.texture.Lock(nil)
	if err != nil {
		return video.Errorf("FinishUpdate", err, "texture lock")
	}
	err = video.ExpandRGB24(pixels, pitch, screen, pal)
	wind.texture.Unlock()
	if err != nil {
		return err
	}

	// Present the scene
	if err := renderer.Copy(wind.texture, nil, &wind.dest); err != nil {
		return video.Errorf("FinishUpdate", err, "render copy")
	}
	renderer.Present()
	return nil
}

func (wind *SDLWindow) Ticks() int64 {
	return int64(sdl.GetTicks()) * 1000
}

func (wind *SDLWindow) Delay(us int64) {
	if us >= 1000 {
		sdl.Delay(uint32(us / 1000))
	}
}
