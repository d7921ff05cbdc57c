package core

import "time"

// Clock turns wall-clock ticks into bounded simulation deltas.
// A dropped frame produces at most MaxDelta seconds of simulated time.
type Clock struct {
	tickRate int
	maxDelta float64
	last     time.Time
	now      func() time.Time
}

// DefaultMaxDelta caps a single frame at a tenth of a second.
const DefaultMaxDelta = 0.1

// NewClock creates a clock for the given frame rate.
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{
		tickRate: tickRate,
		maxDelta: DefaultMaxDelta,
		now:      time.Now,
	}
}

// TickRate returns the target frames per second.
func (c *Clock) TickRate() int {
	return c.tickRate
}

// FrameDuration returns the target time between frames.
func (c *Clock) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.tickRate)
}

// FixedDelta returns the nominal frame delta in seconds.
func (c *Clock) FixedDelta() float64 {
	return 1.0 / float64(c.tickRate)
}

// SetMaxDelta overrides the per-frame cap.
func (c *Clock) SetMaxDelta(d float64) {
	if d > 0 {
		c.maxDelta = d
	}
}

// Tick returns the seconds elapsed since the previous Tick, capped at the
// max delta. The first call returns the fixed delta.
func (c *Clock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return c.FixedDelta()
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now

	if dt < 0 {
		return 0
	}
	if dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Reset forgets the previous tick so the next frame starts fresh, e.g.
// after the loop was suspended.
func (c *Clock) Reset() {
	c.last = time.Time{}
}
