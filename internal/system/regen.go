package system

import (
	"github.com/l1jgo/tickworld/internal/component"
	"github.com/l1jgo/tickworld/internal/core/ecs"
)

// RegenSystem restores Health on a fixed tick interval.
//
// Approach: count ticks. Every interval ticks each living entity gains
// amount, capped at Max when Max is set. Dead entities (Value <= 0) stay dead.
type RegenSystem struct {
	interval  int
	amount    int
	tickCount int
}

func NewRegenSystem(interval, amount int) *RegenSystem {
	if interval < 1 {
		interval = 1
	}
	return &RegenSystem{interval: interval, amount: amount}
}

func (s *RegenSystem) Name() string { return "regen" }

func (s *RegenSystem) Dependencies() []ecs.Kind {
	return []ecs.Kind{component.KindHealth}
}

func (s *RegenSystem) Run(w *ecs.World, matched []ecs.Entity) {
	s.tickCount++
	if s.tickCount%s.interval != 0 {
		return
	}
	for _, e := range matched {
		h, ok := ecs.Get[*component.Health](w, e)
		if !ok {
			continue
		}
		s.regen(h)
	}
}

func (s *RegenSystem) regen(h *component.Health) {
	if h.Value <= 0 {
		return
	}
	if h.Max > 0 && h.Value >= h.Max {
		return
	}
	h.Value += s.amount
	if h.Max > 0 && h.Value > h.Max {
		h.Value = h.Max
	}
}
