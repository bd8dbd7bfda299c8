package core

import "time"

// FixedStep helps run frame updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the tick interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the frame should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.advance(time.Now())
}

func (f *FixedStep) advance(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// FrameClock is the monotonic render clock feeding the frame time. Paused
// time does not count.
type FrameClock struct {
	now     func() time.Time
	start   time.Time
	paused  bool
	pauseAt time.Time
	skipped time.Duration
}

// NewFrameClock starts a clock at zero.
func NewFrameClock() *FrameClock {
	return newFrameClock(time.Now)
}

func newFrameClock(now func() time.Time) *FrameClock {
	c := &FrameClock{now: now}
	c.Reset()
	return c
}

// Reset restarts the clock at zero, keeping the paused state.
func (c *FrameClock) Reset() {
	c.start = c.now()
	c.skipped = 0
	c.pauseAt = c.start
}

// Seconds returns the running time since the last reset.
func (c *FrameClock) Seconds() float64 {
	end := c.now()
	if c.paused {
		end = c.pauseAt
	}
	return (end.Sub(c.start) - c.skipped).Seconds()
}

// Paused reports whether the clock is stopped.
func (c *FrameClock) Paused() bool { return c.paused }

// SetPaused stops or resumes the clock.
func (c *FrameClock) SetPaused(paused bool) {
	if paused == c.paused {
		return
	}
	now := c.now()
	if paused {
		c.pauseAt = now
	} else {
		c.skipped += now.Sub(c.pauseAt)
	}
	c.paused = paused
}

// Toggle flips the paused state.
func (c *FrameClock) Toggle() { c.SetPaused(!c.paused) }
