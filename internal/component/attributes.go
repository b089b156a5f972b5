package component

import (
	"sort"

	"github.com/l1jgo/tickworld/internal/core/ecs"
)

// Attributes is a schemaless component (or resource) for kinds that have no
// Go type, e.g. kinds invented by scripts or scene files. Its kind is chosen
// at construction, so the typed ecs helpers never find it (a nil *Attributes
// has the empty kind); look it up with World.ComponentOf or World.Resource.
type Attributes struct {
	ecs.Owned
	Name   ecs.Kind
	Values map[string]float64
}

func NewAttributes(kind ecs.Kind) *Attributes {
	return &Attributes{Name: kind, Values: make(map[string]float64)}
}

func (a *Attributes) Kind() ecs.Kind {
	if a == nil {
		return ""
	}
	return a.Name
}

func (a *Attributes) Field(name string) (float64, bool) {
	v, ok := a.Values[name]
	return v, ok
}

// SetField creates the field when it does not exist yet.
func (a *Attributes) SetField(name string, v float64) bool {
	if a.Values == nil {
		a.Values = make(map[string]float64)
	}
	a.Values[name] = v
	return true
}

// Keys returns the field names, sorted.
func (a *Attributes) Keys() []string {
	keys := make([]string, 0, len(a.Values))
	for k := range a.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
