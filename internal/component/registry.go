package component

import (
	"sort"

	"github.com/l1jgo/tickworld/internal/core/ecs"
)

// Factory returns a new zero component of one kind.
type Factory func() ecs.Component

// Registry maps kind names to factories so data files and scripts can create
// typed components by name.
type Registry struct {
	factories map[ecs.Kind]Factory
}

// NewRegistry returns a registry preloaded with the built-in kinds.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[ecs.Kind]Factory, 8)}
	r.Register(KindHealth, func() ecs.Component { return &Health{} })
	r.Register(KindPosition, func() ecs.Component { return &Position{} })
	r.Register(KindVelocity, func() ecs.Component { return &Velocity{} })
	r.Register(KindLifetime, func() ecs.Component { return &Lifetime{} })
	return r
}

// Register adds or replaces the factory for kind.
func (r *Registry) Register(kind ecs.Kind, f Factory) {
	r.factories[kind] = f
}

func (r *Registry) Known(kind ecs.Kind) bool {
	_, ok := r.factories[kind]
	return ok
}

// New creates a component of kind. Unregistered kinds get an *Attributes.
func (r *Registry) New(kind ecs.Kind) ecs.Component {
	if f, ok := r.factories[kind]; ok {
		return f()
	}
	return NewAttributes(kind)
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []ecs.Kind {
	kinds := make([]ecs.Kind, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
