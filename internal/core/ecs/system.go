package ecs

// System is a named unit of per-tick logic. Each tick the scheduler queries
// the entities owning every kind in Dependencies and passes them to Run. A
// system with no dependencies still runs every tick, with an empty list.
//
// Run may mutate w, including adding or removing entities, components and
// systems. Changes to components are seen by systems that run later in the
// same tick. Entities in matched may have been removed by the time they are
// read, so lookups on them must tolerate misses.
type System interface {
	Name() string
	Dependencies() []Kind
	Run(w *World, matched []Entity)
}

// SystemFunc is the logic of a closure-backed system.
type SystemFunc func(w *World, matched []Entity)

type funcSystem struct {
	name string
	deps []Kind
	fn   SystemFunc
}

// NewSystem wraps fn as a System named name that depends on deps.
func NewSystem(name string, fn SystemFunc, deps ...Kind) System {
	return &funcSystem{name: name, deps: deps, fn: fn}
}

func (s *funcSystem) Name() string         { return s.name }
func (s *funcSystem) Dependencies() []Kind { return s.deps }

func (s *funcSystem) Run(w *World, matched []Entity) {
	if s.fn != nil {
		s.fn(w, matched)
	}
}
