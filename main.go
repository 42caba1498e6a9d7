package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/ushitora-anqou/doomvid/config"
	"github.com/ushitora-anqou/doomvid/display"
	"github.com/ushitora-anqou/doomvid/event"
	"github.com/ushitora-anqou/doomvid/util"
	"github.com/ushitora-anqou/doomvid/video"
	"github.com/ushitora-anqou/doomvid/window"
	"go.uber.org/zap"
)

var (
	flagConfig     = flag.String("config", "", "path to a TOML config file")
	flagScale      = flag.Int("scale", 0, "window multiplier")
	flagFullscreen = flag.Bool("fullscreen", false, "use a fullscreen window")
	flagNoGrab     = flag.Bool("nograb", false, "do not capture the mouse")
	flagHeadless   = flag.Bool("headless", false, "render into memory instead of a window")
	flagFrames     = flag.Int("frames", 0, "stop after this many tics (0 runs until quit)")
	flagScreenshot = flag.String("screenshot", "", "screenshot path (.bmp or .png)")
)

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *flagConfig != "" {
		var err error
		if cfg, err = config.Load(*flagConfig); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scale":
			cfg.Scale = *flagScale
		case "fullscreen":
			cfg.Fullscreen = *flagFullscreen
		case "nograb":
			cfg.GrabMouse = !*flagNoGrab
		case "headless":
			if *flagHeadless {
				cfg.Backend = config.BackendHeadless
			} else {
				cfg.Backend = config.BackendNative
			}
		}
	})
	return cfg, cfg.Validate()
}

func newDemo(wind window.Window, cfg config.Config) *Demo {
	screen := video.NewScreen()
	queue := event.NewQueue()
	var demo *Demo
	cfg.OnQuit = func() { demo.RequestQuit() }
	disp := display.New(wind, cfg, screen, queue)
	demo = NewDemo(disp, screen, queue)
	demo.shotPath = *flagScreenshot
	return demo
}

// runLoop drives tics at the configured rate until the demo quits or the
// frame limit is reached.
func runLoop(demo *Demo, clock window.Clock, ticRate int) error {
	disp := demo.disp
	disp.InitGraphics()
	defer disp.ShutdownGraphics()
	disp.SetPalette(demo.base)

	synchronizer := window.NewTimeSynchronizer(clock, float64(ticRate))
	for n := 0; !demo.Quit(); n++ {
		if *flagFrames > 0 && n >= *flagFrames {
			break
		}
		demo.Tic()
		demo.Frame()
		synchronizer.MaySleep()
	}
	if *flagFrames > 0 {
		return demo.Screenshot()
	}
	return nil
}

// runHeadless runs the demo against an in-memory window and reports how
// many frames were presented.
func runHeadless(cfg config.Config) (int, error) {
	if *flagFrames == 0 {
		*flagFrames = cfg.TicRate
	}
	wind := window.NewHeadlessWindow()
	demo := newDemo(wind, cfg)
	if err := runLoop(demo, wind, cfg.TicRate); err != nil {
		return wind.Frames(), err
	}
	util.Logger().Info("headless run finished",
		zap.Int("frames", wind.Frames()),
		zap.Int64("elapsed_us", wind.Ticks()))
	return wind.Frames(), nil
}

func run() error {
	flag.Parse()
	if flag.NArg() != 0 {
		return fmt.Errorf("Usage: %s [flags]", os.Args[0])
	}
	if os.Getenv("DOOMVID_TRACE") == "1" {
		util.EnableTrace()
	}
	if filename := os.Getenv("DOOMVID_CPUPROFILE"); filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return runBackend(cfg)
}

func main() {
	defer util.Logger().Sync() //nolint:errcheck
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}
