package system

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultTickRate is used when a runner is given a non-positive rate.
const DefaultTickRate = 50 * time.Millisecond

// Ticker is the world side of the frame loop.
type Ticker interface {
	Tick()
}

// Runner drives a world at a fixed tick rate, advancing the clock before
// every tick.
type Runner struct {
	world    Ticker
	clock    *Clock
	rate     time.Duration
	maxTicks uint64
	log      *zap.Logger
}

func NewRunner(world Ticker, clock *Clock, rate time.Duration, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if clock == nil {
		clock = NewClock()
	}
	if rate <= 0 {
		log.Warn("non-positive tick rate, using default",
			zap.Duration("tick_rate", rate),
			zap.Duration("default", DefaultTickRate),
		)
		rate = DefaultTickRate
	}
	return &Runner{
		world: world,
		clock: clock,
		rate:  rate,
		log:   log,
	}
}

// StopAfter makes Run return once the clock has seen n frames. Zero means
// run until the context is cancelled.
func (r *Runner) StopAfter(n uint64) {
	r.maxTicks = n
}

func (r *Runner) Clock() *Clock { return r.clock }

// Rate is the interval between ticks in Run.
func (r *Runner) Rate() time.Duration { return r.rate }

// Step advances the clock to now and ticks the world once.
func (r *Runner) Step(now time.Time) {
	r.clock.Advance(now)
	r.world.Tick()
}

// Run ticks the world every rate until ctx is done or the tick limit is hit.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.rate)
	defer ticker.Stop()

	r.log.Info("frame loop started", zap.Duration("tick_rate", r.rate))
	for {
		select {
		case <-ctx.Done():
			r.log.Info("frame loop stopped", zap.Uint64("frames", r.clock.Frame()))
			return nil
		case now := <-ticker.C:
			r.Step(now)
			if r.maxTicks > 0 && r.clock.Frame() >= r.maxTicks {
				r.log.Info("frame loop reached tick limit", zap.Uint64("frames", r.clock.Frame()))
				return nil
			}
		}
	}
}
