package ecs

import (
	"slices"

	"github.com/kelindar/bitmap"
)

// Kind names a bucket of components or a resource slot.
type Kind string

// Component is a value owned by exactly one entity. Implementations embed
// Owned and declare Kind on a pointer receiver that does not dereference, so
// the kind of a nil *T is still available to the typed helpers:
//
//	type Health struct {
//		ecs.Owned
//		Value int
//	}
//
//	func (*Health) Kind() ecs.Kind { return "Health" }
type Component interface {
	Kind() Kind
	Owner() Entity
	bind(e Entity)
}

// Owned records the owning entity. It is a plain id, never a reference into
// the store.
type Owned struct {
	Entity Entity `yaml:"-"`
}

func (o *Owned) Owner() Entity { return o.Entity }
func (o *Owned) bind(e Entity) { o.Entity = e }

// bucket holds every component of one kind in insertion order.
type bucket struct {
	items []Component
}

func (b *bucket) add(c Component) {
	b.items = append(b.items, c)
}

func (b *bucket) first(e Entity) (Component, bool) {
	for _, c := range b.items {
		if c.Owner() == e {
			return c, true
		}
	}
	return nil, false
}

// removeFirst erases the first entry tagged e, keeping the order of the rest.
func (b *bucket) removeFirst(e Entity) bool {
	for i, c := range b.items {
		if c.Owner() == e {
			b.items = slices.Delete(b.items, i, i+1)
			return true
		}
	}
	return false
}

// removeAll erases every entry tagged e and returns how many were dropped.
func (b *bucket) removeAll(e Entity) int {
	before := len(b.items)
	b.items = slices.DeleteFunc(b.items, func(c Component) bool {
		return c.Owner() == e
	})
	return before - len(b.items)
}

// owners returns the set of entities with at least one entry in the bucket.
func (b *bucket) owners() bitmap.Bitmap {
	var set bitmap.Bitmap
	for _, c := range b.items {
		set.Set(uint32(c.Owner()))
	}
	return set
}

func (b *bucket) size() int {
	return len(b.items)
}
