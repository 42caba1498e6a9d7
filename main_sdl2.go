//go:build sdl2 && !ebiten

package main

import (
	"runtime"

	"github.com/ushitora-anqou/doomvid/config"
	"github.com/ushitora-anqou/doomvid/window"
)

func init() {
	// SDL must be driven from the thread that initialized it.
	runtime.LockOSThread()
}

func runBackend(cfg config.Config) error {
	if cfg.Backend == config.BackendHeadless {
		_, err := runHeadless(cfg)
		return err
	}
	wind := window.NewSDLWindow()
	return runLoop(newDemo(wind, cfg), wind, cfg.TicRate)
}
