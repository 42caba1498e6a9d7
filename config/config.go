// Package config holds the video layer settings. Values come from the
// defaults, then an optional TOML file, then DOOMVID_* environment
// variables, and finally command-line flags applied by main. Validate is
// left to the caller once every layer has been applied.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/ushitora-anqou/doomvid/constant"
)

const (
	BackendNative   = "native"
	BackendHeadless = "headless"
)

type Config struct {
	Backend      string `toml:"backend"`
	Title        string `toml:"title"`
	Scale        int    `toml:"scale"`
	Fullscreen   bool   `toml:"fullscreen"`
	GrabMouse    bool   `toml:"grab_mouse"`
	ScaleQuality string `toml:"scale_quality"`
	VSync        bool   `toml:"vsync"`
	TicRate      int    `toml:"tic_rate"`

	// OnQuit is called when the host asks the window to close.
	OnQuit func() `toml:"-"`
}

func Default() Config {
	return Config{
		Backend:      BackendNative,
		Title:        constant.WINDOW_TITLE,
		Scale:        constant.DEFAULT_SCALE,
		GrabMouse:    true,
		ScaleQuality: "nearest",
		VSync:        false,
		TicRate:      constant.TICRATE,
	}
}

// Load reads path on top of the defaults. Unknown keys are an error; values
// are not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	src, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := toml.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from DOOMVID_BACKEND, DOOMVID_SCALE,
// DOOMVID_FULLSCREEN and DOOMVID_GRAB.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("DOOMVID_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("DOOMVID_SCALE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DOOMVID_SCALE: %w", err)
		}
		c.Scale = n
	}
	for _, env := range []struct {
		name string
		dst  *bool
	}{
		{"DOOMVID_FULLSCREEN", &c.Fullscreen},
		{"DOOMVID_GRAB", &c.GrabMouse},
	} {
		v := os.Getenv(env.name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", env.name, err)
		}
		*env.dst = b
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendNative, BackendHeadless:
	default:
		return fmt.Errorf("Invalid backend: %q", c.Backend)
	}
	if c.Scale < 1 || c.Scale > constant.MAX_SCALE {
		return fmt.Errorf("Invalid scale: expected 1..%d, got %d", constant.MAX_SCALE, c.Scale)
	}
	if c.TicRate <= 0 {
		return fmt.Errorf("Invalid tic rate: %d", c.TicRate)
	}
	switch c.ScaleQuality {
	case "nearest", "linear", "best":
	default:
		return fmt.Errorf("Invalid scale quality: %q", c.ScaleQuality)
	}
	return nil
}

// WindowSize is the host window size in pixels.
func (c *Config) WindowSize() (int, int) {
	return constant.SCREEN_WIDTH * c.Scale, constant.SCREEN_HEIGHT * c.Scale
}

// Quit invokes OnQuit if one is set.
func (c *Config) Quit() {
	if c.OnQuit != nil {
		c.OnQuit()
	}
}
