package component

import "github.com/l1jgo/tickworld/internal/core/ecs"

type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v *Vec3) Field(name string) (float64, bool) {
	switch name {
	case "x":
		return v.X, true
	case "y":
		return v.Y, true
	case "z":
		return v.Z, true
	}
	return 0, false
}

func (v *Vec3) SetField(name string, f float64) bool {
	switch name {
	case "x":
		v.X = f
	case "y":
		v.Y = f
	case "z":
		v.Z = f
	default:
		return false
	}
	return true
}

// Position is a world-space location.
type Position struct {
	ecs.Owned `yaml:",inline"`
	Vec3      `yaml:",inline"`
}

func (*Position) Kind() ecs.Kind { return KindPosition }

// Velocity is in units per second.
type Velocity struct {
	ecs.Owned `yaml:",inline"`
	Vec3      `yaml:",inline"`
}

func (*Velocity) Kind() ecs.Kind { return KindVelocity }
