package ecs

import "sort"

// Resource is a singleton value keyed by its kind alone.
type Resource interface {
	Kind() Kind
}

// ResourceStore holds at most one resource per kind.
type ResourceStore struct {
	items map[Kind]Resource
}

func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		items: make(map[Kind]Resource, 8),
	}
}

// Add stores r, replacing any resource of the same kind. It reports whether a
// previous instance was replaced.
func (s *ResourceStore) Add(r Resource) bool {
	_, replaced := s.items[r.Kind()]
	s.items[r.Kind()] = r
	return replaced
}

func (s *ResourceStore) Get(kind Kind) (Resource, bool) {
	r, ok := s.items[kind]
	return r, ok
}

func (s *ResourceStore) Remove(kind Kind) bool {
	if _, ok := s.items[kind]; !ok {
		return false
	}
	delete(s.items, kind)
	return true
}

func (s *ResourceStore) Len() int {
	return len(s.items)
}

// Kinds returns the stored resource kinds, sorted.
func (s *ResourceStore) Kinds() []Kind {
	kinds := make([]Kind, 0, len(s.items))
	for k := range s.items {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func (s *ResourceStore) Reset() {
	clear(s.items)
}
