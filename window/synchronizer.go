package window

type Clock interface {
	Ticks() int64
	Delay(us int64)
}

// TimeSynchronizer keeps the main loop at a fixed rate. A frame that runs
// late is not made up for by shortening the next one beyond zero.
type TimeSynchronizer struct {
	prevTicks, usPerFrame int64
	clock                 Clock
}

func NewTimeSynchronizer(clock Clock, targetFPS float64) *TimeSynchronizer {
	return &TimeSynchronizer{
		prevTicks:  clock.Ticks(),
		usPerFrame: int64(1000000.0 / targetFPS),
		clock:      clock,
	}
}

func (ts *TimeSynchronizer) MaySleep() {
	cur := ts.clock.Ticks()
	if cur < ts.prevTicks {
		return
	}
	diff := ts.usPerFrame - (cur - ts.prevTicks)
	if diff > 1000 { // Larger than 1ms
		ts.clock.Delay(diff)
	}
	ts.prevTicks += ts.usPerFrame
	if cur-ts.prevTicks > ts.usPerFrame {
		// Too far behind; start over from now.
		ts.prevTicks = cur
	}
}
