package sim

import "math"

// Clock defaults. A single frame sample is clamped to MaxFrameTime before
// accumulating so a stall (debugger pause, laptop sleep) cannot schedule
// thousands of catch-up steps, and MaxSteps caps one Advance call outright.
const (
	DefaultMaxFrameTime = 0.25
	DefaultMaxSteps     = 240
)

// Clock turns irregular real elapsed time into whole fixed-dt steps.
// It keeps the fractional remainder between frames, which is what makes
// the simulation framerate independent: the same total elapsed time
// yields the same step count however it is sliced.
type Clock struct {
	Dt           float64
	MaxFrameTime float64
	MaxSteps     int

	acc float64
}

func NewClock(dt float64) *Clock {
	return &Clock{
		Dt:           dt,
		MaxFrameTime: DefaultMaxFrameTime,
		MaxSteps:     DefaultMaxSteps,
	}
}

// Advance adds elapsed real time and returns how many fixed steps fit.
// Negative or NaN samples are ignored. When the backlog would exceed
// MaxSteps the excess whole steps are dropped, keeping only the
// sub-dt remainder, rather than spiraling.
func (c *Clock) Advance(elapsed float64) int {
	if elapsed < 0 || math.IsNaN(elapsed) {
		return 0
	}
	if elapsed > c.MaxFrameTime {
		elapsed = c.MaxFrameTime
	}
	c.acc += elapsed

	n := 0
	for c.acc >= c.Dt && n < c.MaxSteps {
		c.acc -= c.Dt
		n++
	}
	if c.acc >= c.Dt {
		c.acc = math.Mod(c.acc, c.Dt)
	}
	return n
}

// Pending returns the sub-dt remainder carried to the next frame.
func (c *Clock) Pending() float64 { return c.acc }

func (c *Clock) Reset() { c.acc = 0 }
