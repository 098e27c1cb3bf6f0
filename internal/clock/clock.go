// Package clock provides a pausable elapsed-time clock for the animation loop.
package clock

import "time"

// Clock tracks elapsed simulation time. While paused, the elapsed time is
// frozen at the moment of pausing; resuming continues from that value.
type Clock struct {
	now func() time.Time

	startedAt time.Time     // real time of the last start or resume
	base      time.Duration // elapsed time carried into the current run
	snapshot  time.Duration // elapsed time frozen at pause
	running   bool
}

// Option configures a Clock.
type Option func(*Clock)

// WithTimeSource replaces time.Now, mainly for tests.
func WithTimeSource(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// New creates a started clock.
func New(opts ...Option) *Clock {
	c := &Clock{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	c.Start()
	return c
}

// Start resets the elapsed time to zero and runs the clock.
func (c *Clock) Start() {
	c.startedAt = c.now()
	c.base = 0
	c.snapshot = 0
	c.running = true
}

// Elapsed returns the elapsed simulation time.
func (c *Clock) Elapsed() time.Duration {
	if !c.running {
		return c.snapshot
	}
	d := c.now().Sub(c.startedAt)
	if d < 0 {
		// time source stepped backwards
		d = 0
	}
	return c.base + d
}

// ElapsedTime returns the elapsed simulation time in seconds.
func (c *Clock) ElapsedTime() float64 {
	return c.Elapsed().Seconds()
}

// Pause freezes the elapsed time. It is a no-op when already paused.
func (c *Clock) Pause() {
	if !c.running {
		return
	}
	c.snapshot = c.Elapsed()
	c.running = false
}

// Resume restarts the clock from the paused elapsed time. It is a no-op when
// the clock is running.
func (c *Clock) Resume() {
	if c.running {
		return
	}
	c.base = c.snapshot
	c.startedAt = c.now()
	c.running = true
}

// Toggle pauses a running clock or resumes a paused one.
func (c *Clock) Toggle() {
	if c.running {
		c.Pause()
	} else {
		c.Resume()
	}
}

// Running reports whether the clock is advancing.
func (c *Clock) Running() bool {
	return c.running
}
