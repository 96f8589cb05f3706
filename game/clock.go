package game

import "time"

// cadenceClock gates a system to a fixed interval on top of the frame loop.
// Advance accumulates frame time and reports whether the interval elapsed
// this frame; overshoot carries into the next interval so the average
// cadence stays fixed.
type cadenceClock struct {
	interval time.Duration
	elapsed  time.Duration
}

func newCadenceClock(interval time.Duration) *cadenceClock {
	return &cadenceClock{interval: interval}
}

// Advance adds dt and reports whether the clock fired. The clock fires at
// most once per call: a frame longer than two intervals still yields a
// single tick, matching a timer that is checked once per frame.
func (c *cadenceClock) Advance(dt time.Duration) bool {
	c.elapsed += dt
	if c.elapsed < c.interval {
		return false
	}
	c.elapsed -= c.interval
	if c.elapsed >= c.interval {
		// Don't let a long stall queue up a burst of ticks.
		c.elapsed = c.elapsed % c.interval
	}
	return true
}

// Reset discards any accumulated time.
func (c *cadenceClock) Reset() {
	c.elapsed = 0
}
