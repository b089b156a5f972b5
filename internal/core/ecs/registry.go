package ecs

import (
	"slices"
	"sort"
)

// Registry is the component store: one bucket per kind, created on first use.
// A kind that was never added and a kind whose bucket is empty behave the same.
type Registry struct {
	buckets map[Kind]*bucket
}

func NewRegistry() *Registry {
	return &Registry{
		buckets: make(map[Kind]*bucket, 16),
	}
}

// Add binds c to e and appends it to the bucket for c.Kind(). Adding a second
// component of the same kind to e keeps both.
func (r *Registry) Add(e Entity, c Component) {
	c.bind(e)
	b, ok := r.buckets[c.Kind()]
	if !ok {
		b = &bucket{items: make([]Component, 0, 8)}
		r.buckets[c.Kind()] = b
	}
	b.add(c)
}

// First returns the first component of kind owned by e, in storage order.
func (r *Registry) First(kind Kind, e Entity) (Component, bool) {
	b, ok := r.buckets[kind]
	if !ok {
		return nil, false
	}
	return b.first(e)
}

// Remove erases the first component in c's bucket owned by c's entity.
func (r *Registry) Remove(c Component) bool {
	b, ok := r.buckets[c.Kind()]
	if !ok {
		return false
	}
	return b.removeFirst(c.Owner())
}

// RemoveEntity clears e from every bucket and returns the number of
// components dropped.
func (r *Registry) RemoveEntity(e Entity) int {
	n := 0
	for _, b := range r.buckets {
		n += b.removeAll(e)
	}
	return n
}

// Bucket returns a copy of the components of kind in storage order.
func (r *Registry) Bucket(kind Kind) []Component {
	b, ok := r.buckets[kind]
	if !ok {
		return nil
	}
	return slices.Clone(b.items)
}

// Each visits the components of kind in storage order. fn must not add or
// remove components of the same kind.
func (r *Registry) Each(kind Kind, fn func(Component)) {
	b, ok := r.buckets[kind]
	if !ok {
		return
	}
	for _, c := range b.items {
		fn(c)
	}
}

// Len returns the number of stored components of kind.
func (r *Registry) Len(kind Kind) int {
	b, ok := r.buckets[kind]
	if !ok {
		return 0
	}
	return b.size()
}

// Kinds returns every kind with at least one stored component, sorted.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.buckets))
	for k, b := range r.buckets {
		if b.size() > 0 {
			kinds = append(kinds, k)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Reset drops every bucket.
func (r *Registry) Reset() {
	clear(r.buckets)
}
