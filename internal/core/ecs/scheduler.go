package ecs

import "github.com/google/btree"

// Scheduler holds registered systems ordered by name. Tick order is the
// lexicographic order of names, independent of registration order.
type Scheduler struct {
	systems *btree.BTreeG[System]
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		systems: btree.NewG(8, func(a, b System) bool {
			return a.Name() < b.Name()
		}),
	}
}

// systemKey is a lookup probe for the name-ordered tree.
type systemKey string

func (k systemKey) Name() string             { return string(k) }
func (k systemKey) Dependencies() []Kind     { return nil }
func (k systemKey) Run(_ *World, _ []Entity) {}

// Add registers s, replacing any system with the same name. It reports
// whether a system was replaced.
func (s *Scheduler) Add(sys System) bool {
	_, replaced := s.systems.ReplaceOrInsert(sys)
	return replaced
}

func (s *Scheduler) Remove(name string) bool {
	_, ok := s.systems.Delete(systemKey(name))
	return ok
}

func (s *Scheduler) Get(name string) (System, bool) {
	return s.systems.Get(systemKey(name))
}

func (s *Scheduler) Has(name string) bool {
	return s.systems.Has(systemKey(name))
}

// Systems returns the registered systems in tick order.
func (s *Scheduler) Systems() []System {
	out := make([]System, 0, s.systems.Len())
	s.systems.Ascend(func(sys System) bool {
		out = append(out, sys)
		return true
	})
	return out
}

// Names returns the registered system names in tick order.
func (s *Scheduler) Names() []string {
	out := make([]string, 0, s.systems.Len())
	s.systems.Ascend(func(sys System) bool {
		out = append(out, sys.Name())
		return true
	})
	return out
}

func (s *Scheduler) Len() int {
	return s.systems.Len()
}

func (s *Scheduler) Reset() {
	s.systems.Clear(false)
}
