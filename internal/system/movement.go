package system

import (
	"github.com/l1jgo/tickworld/internal/component"
	"github.com/l1jgo/tickworld/internal/core/ecs"
	coresys "github.com/l1jgo/tickworld/internal/core/system"
)

// MovementSystem integrates Position by Velocity over the clock's delta time.
// Without a Clock resource nothing moves.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Dependencies() []ecs.Kind {
	return []ecs.Kind{component.KindPosition, component.KindVelocity}
}

func (s *MovementSystem) Run(w *ecs.World, matched []ecs.Entity) {
	if len(matched) == 0 {
		return
	}
	clock, ok := ecs.GetResource[*coresys.Clock](w)
	if !ok {
		return
	}
	dt := clock.DeltaTime().Seconds()
	if dt <= 0 {
		return
	}
	for _, e := range matched {
		pos, ok := ecs.Get[*component.Position](w, e)
		if !ok {
			continue
		}
		vel, ok := ecs.Get[*component.Velocity](w, e)
		if !ok {
			continue
		}
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		pos.Z += vel.Z * dt
	}
}
