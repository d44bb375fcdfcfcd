package core

import "time"

// FrameClock turns irregular host callbacks into a fixed-step cadence.
// Each call to Ready advances at most one step; elapsed time beyond the
// interval is carried over, and whole missed steps are dropped.
type FrameClock struct {
	interval time.Duration
	last     time.Time
	started  bool
}

// NewFrameClock creates a clock ticking at the given rate per second.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{interval: time.Second / time.Duration(tickRate)}
}

// Interval returns the target step interval.
func (c *FrameClock) Interval() time.Duration {
	return c.interval
}

// Ready reports whether a simulation step is due at now.
func (c *FrameClock) Ready(now time.Time) bool {
	if !c.started {
		c.last = now
		c.started = true
		return false
	}

	elapsed := now.Sub(c.last)
	if elapsed <= c.interval {
		return false
	}

	c.last = now.Add(-(elapsed % c.interval))
	return true
}

// Reset forgets the last processed frame.
func (c *FrameClock) Reset() {
	c.started = false
}
