package system

import (
	"time"

	"github.com/l1jgo/tickworld/internal/core/ecs"
)

// KindClock is the resource kind of *Clock.
const KindClock ecs.Kind = "Clock"

// fpsSmoothing is the weight of the newest frame in the FPS moving average.
const fpsSmoothing = 0.1

// Clock is the time source resource read by systems. The runner advances it
// once per tick, before the world ticks.
type Clock struct {
	start time.Time
	last  time.Time
	delta time.Duration
	fps   float64
	frame uint64
}

func NewClock() *Clock {
	return &Clock{}
}

func (*Clock) Kind() ecs.Kind { return KindClock }

// Advance records a frame boundary at now. The first call only anchors the
// clock and leaves DeltaTime at zero.
func (c *Clock) Advance(now time.Time) {
	c.frame++
	if c.last.IsZero() {
		c.start = now
		c.last = now
		return
	}
	c.delta = now.Sub(c.last)
	c.last = now
	if c.delta <= 0 {
		return
	}
	instant := float64(time.Second) / float64(c.delta)
	if c.fps == 0 {
		c.fps = instant
		return
	}
	c.fps += fpsSmoothing * (instant - c.fps)
}

// DeltaTime is the duration between the last two frames.
func (c *Clock) DeltaTime() time.Duration { return c.delta }

// FPS is an exponential moving average of the frame rate.
func (c *Clock) FPS() float64 { return c.fps }

// Frame is the number of Advance calls so far.
func (c *Clock) Frame() uint64 { return c.frame }

// Elapsed is the time between the first and the latest frame.
func (c *Clock) Elapsed() time.Duration { return c.last.Sub(c.start) }
