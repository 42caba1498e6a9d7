//go:build !sdl2 && !ebiten

package main

import "github.com/ushitora-anqou/doomvid/config"

func runBackend(cfg config.Config) error {
	_, err := runHeadless(cfg)
	return err
}
