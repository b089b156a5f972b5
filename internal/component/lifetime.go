package component

import "github.com/l1jgo/tickworld/internal/core/ecs"

// Lifetime removes its entity after Ticks more ticks.
type Lifetime struct {
	ecs.Owned `yaml:",inline"`
	Ticks     int `yaml:"ticks"`
}

func (*Lifetime) Kind() ecs.Kind { return KindLifetime }

func (l *Lifetime) Field(name string) (float64, bool) {
	if name != "ticks" {
		return 0, false
	}
	return float64(l.Ticks), true
}

func (l *Lifetime) SetField(name string, v float64) bool {
	if name != "ticks" {
		return false
	}
	l.Ticks = int(v)
	return true
}
