package system_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/tickworld/internal/core/system"
)

type countingWorld struct {
	ticks int
}

func (w *countingWorld) Tick() { w.ticks++ }

func TestRunner_Step(t *testing.T) {
	t.Parallel()
	w := &countingWorld{}
	r := system.NewRunner(w, nil, time.Millisecond, nil)

	now := time.Unix(0, 0)
	r.Step(now)
	r.Step(now.Add(20 * time.Millisecond))

	assert.Equal(t, 2, w.ticks)
	assert.Equal(t, uint64(2), r.Clock().Frame())
	assert.Equal(t, 20*time.Millisecond, r.Clock().DeltaTime())
}

func TestRunner_StopAfter(t *testing.T) {
	t.Parallel()
	w := &countingWorld{}
	r := system.NewRunner(w, system.NewClock(), time.Millisecond, nil)
	r.StopAfter(3)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, r.Run(ctx))
	assert.Equal(t, 3, w.ticks)
}

func TestRunner_StopsOnCancel(t *testing.T) {
	t.Parallel()
	w := &countingWorld{}
	r := system.NewRunner(w, nil, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, r.Run(ctx))
	assert.Equal(t, 0, w.ticks)
}

func TestRunner_NonPositiveRateFallsBack(t *testing.T) {
	t.Parallel()

	for _, rate := range []time.Duration{0, -time.Second} {
		w := &countingWorld{}
		r := system.NewRunner(w, nil, rate, nil)
		assert.Equal(t, system.DefaultTickRate, r.Rate())

		r.StopAfter(2)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		require.NotPanics(t, func() { require.NoError(t, r.Run(ctx)) })
		cancel()
		assert.Equal(t, 2, w.ticks)
	}
}
