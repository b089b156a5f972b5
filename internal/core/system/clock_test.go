package system_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/l1jgo/tickworld/internal/core/ecs"
	"github.com/l1jgo/tickworld/internal/core/system"
)

func TestClock_Advance(t *testing.T) {
	t.Parallel()
	c := system.NewClock()
	start := time.Unix(1000, 0)

	c.Advance(start)
	assert.Equal(t, uint64(1), c.Frame())
	assert.Zero(t, c.DeltaTime())
	assert.Zero(t, c.FPS())

	c.Advance(start.Add(100 * time.Millisecond))
	assert.Equal(t, 100*time.Millisecond, c.DeltaTime())
	assert.InDelta(t, 10.0, c.FPS(), 1e-9)

	c.Advance(start.Add(150 * time.Millisecond))
	assert.Equal(t, 50*time.Millisecond, c.DeltaTime())
	assert.InDelta(t, 11.0, c.FPS(), 1e-9)
	assert.Equal(t, 150*time.Millisecond, c.Elapsed())
}

func TestClock_IsResource(t *testing.T) {
	t.Parallel()
	w := ecs.NewWorld(nil)
	w.Init()
	w.AddResource(system.NewClock())

	c, ok := ecs.GetResource[*system.Clock](w)
	assert.True(t, ok)
	assert.NotNil(t, c)
	assert.Equal(t, system.KindClock, ecs.KindOf[*system.Clock]())
}
