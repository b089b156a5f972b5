package ecs_test

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/l1jgo/tickworld/internal/core/ecs"
)

type health struct {
	ecs.Owned
	Value int
}

func (*health) Kind() ecs.Kind { return "Health" }

type position struct {
	ecs.Owned
	X, Y float64
}

func (*position) Kind() ecs.Kind { return "Position" }

type compA struct{ ecs.Owned }

func (*compA) Kind() ecs.Kind { return "A" }

type compB struct{ ecs.Owned }

func (*compB) Kind() ecs.Kind { return "B" }

type compC struct{ ecs.Owned }

func (*compC) Kind() ecs.Kind { return "C" }

type gravity struct {
	G float64
}

func (*gravity) Kind() ecs.Kind { return "Gravity" }

func newWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld(zaptest.NewLogger(t))
	w.Init()
	return w
}

// spawn creates n entities and returns them in creation order.
func spawn(w *ecs.World, n int) []ecs.Entity {
	out := make([]ecs.Entity, 0, n)
	for range n {
		out = append(out, w.NewEntity())
	}
	return out
}
