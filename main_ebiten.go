//go:build ebiten

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ushitora-anqou/doomvid/config"
	"github.com/ushitora-anqou/doomvid/window"
)

type Game struct {
	demo *Demo
	wind *window.EbitenWindow
	tics int
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.wind.Layout(outsideWidth, outsideHeight)
}

func (g *Game) Update() error {
	if g.demo.Quit() || (*flagFrames > 0 && g.tics >= *flagFrames) {
		return ebiten.Termination
	}
	g.demo.Tic()
	g.tics++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.demo.Frame()
	g.wind.Draw(screen)
}

func runBackend(cfg config.Config) error {
	if cfg.Backend == config.BackendHeadless {
		_, err := runHeadless(cfg)
		return err
	}
	wind := window.NewEbitenWindow()
	demo := newDemo(wind, cfg)
	disp := demo.disp
	disp.InitGraphics()
	defer disp.ShutdownGraphics()
	disp.SetPalette(demo.base)

	if err := ebiten.RunGame(&Game{demo: demo, wind: wind}); err != nil {
		return err
	}
	if *flagFrames > 0 {
		return demo.Screenshot()
	}
	return nil
}
