package ecs

import "github.com/kelindar/bitmap"

// Entity is an opaque, strictly positive identifier. Zero is never issued.
type Entity uint32

func (e Entity) IsZero() bool { return e == 0 }

// EntityPool tracks the set of live entities.
//
// Allocation is max(live)+1, or 1 when nothing is live. Ids are unique among
// live entities only: removing the current maximum makes its value available
// to the next Create.
type EntityPool struct {
	live  bitmap.Bitmap
	count int
}

func NewEntityPool() *EntityPool {
	return &EntityPool{
		live: make(bitmap.Bitmap, 0, 16),
	}
}

func (p *EntityPool) Create() Entity {
	next := uint32(1)
	if hi, ok := p.live.Max(); ok {
		next = hi + 1
	}
	p.live.Set(next)
	p.count++
	return Entity(next)
}

func (p *EntityPool) Alive(e Entity) bool {
	return !e.IsZero() && p.live.Contains(uint32(e))
}

// Destroy removes e from the live set. It reports false if e was not live.
func (p *EntityPool) Destroy(e Entity) bool {
	if !p.Alive(e) {
		return false
	}
	p.live.Remove(uint32(e))
	p.count--
	return true
}

// Entities returns the live entities in ascending order.
func (p *EntityPool) Entities() []Entity {
	out := make([]Entity, 0, p.count)
	p.live.Range(func(x uint32) {
		out = append(out, Entity(x))
	})
	return out
}

func (p *EntityPool) Count() int {
	return p.count
}

func (p *EntityPool) Reset() {
	p.live.Clear()
	p.count = 0
}
