package system

import (
	"github.com/l1jgo/tickworld/internal/component"
	"github.com/l1jgo/tickworld/internal/core/ecs"
)

// LifetimeSystem counts Lifetime down once per tick and queues the entity
// for removal when it reaches zero. Removal happens after the last system of
// the tick, so systems running later still see the entity this tick.
type LifetimeSystem struct{}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Name() string { return "lifetime" }

func (s *LifetimeSystem) Dependencies() []ecs.Kind {
	return []ecs.Kind{component.KindLifetime}
}

func (s *LifetimeSystem) Run(w *ecs.World, matched []ecs.Entity) {
	for _, e := range matched {
		l, ok := ecs.Get[*component.Lifetime](w, e)
		if !ok {
			continue
		}
		l.Ticks--
		if l.Ticks <= 0 {
			w.MarkForRemoval(e)
		}
	}
}
