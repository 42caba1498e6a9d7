package window

import (
	"github.com/ushitora-anqou/doomvid/config"
	"github.com/ushitora-anqou/doomvid/event"
	"github.com/ushitora-anqou/doomvid/video"
)

// Window owns the host window, renderer and texture for the life of the
// process.
type Window interface {
	// Init creates the window/renderer/texture triple.
	Init(cfg config.Config) error
	// Shutdown destroys what Init created.
	Shutdown()
	// PollEvents translates every pending host event and posts it. It
	// reports false when there is no window to poll.
	PollEvents(poster event.Poster) bool
	// Present expands screen through pal and shows it.
	Present(pal *video.Palette, screen []byte) error

	// Ticks returns a monotonic time in microseconds.
	Ticks() int64
	// Delay sleeps for about us microseconds.
	Delay(us int64)
}
