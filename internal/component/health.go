package component

import "github.com/l1jgo/tickworld/internal/core/ecs"

// Health stores hit points for an entity.
// Pure data. Regeneration and damage happen in systems.
type Health struct {
	ecs.Owned `yaml:",inline"`
	Value     int `yaml:"value"`
	Max       int `yaml:"max"` // 0 = uncapped
}

func (*Health) Kind() ecs.Kind { return KindHealth }

func (h *Health) Field(name string) (float64, bool) {
	switch name {
	case "value":
		return float64(h.Value), true
	case "max":
		return float64(h.Max), true
	}
	return 0, false
}

func (h *Health) SetField(name string, v float64) bool {
	switch name {
	case "value":
		h.Value = int(v)
	case "max":
		h.Max = int(v)
	default:
		return false
	}
	return true
}
