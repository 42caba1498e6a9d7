package video

import "github.com/ushitora-anqou/doomvid/event"

// MouseButtons builds the event posted on any button press or release.
func MouseButtons(buttons uint8) event.Event {
	return event.Event{Type: event.Mouse, Data1: int(buttons)}
}

// MouseMotion scales relative window motion back to framebuffer space.
// Motion that rounds to nothing yields no event.
func MouseMotion(buttons uint8, xrel, yrel, scale int) (event.Event, bool) {
	if scale < 1 {
		scale = 1
	}
	dx := xrel / scale
	dy := yrel / scale
	ev := event.Event{
		Type:  event.Mouse,
		Data1: int(buttons),
		Data2: dx << 4,
		Data3: -dy << 4,
	}
	return ev, ev.Data2 != 0 || ev.Data3 != 0
}
