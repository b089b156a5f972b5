package component

import "github.com/l1jgo/tickworld/internal/core/ecs"

const (
	KindHealth   ecs.Kind = "Health"
	KindPosition ecs.Kind = "Position"
	KindVelocity ecs.Kind = "Velocity"
	KindLifetime ecs.Kind = "Lifetime"
)

// Fielded is implemented by components whose numeric fields can be read and
// written by name, from scripts and scene files.
type Fielded interface {
	Field(name string) (float64, bool)
	SetField(name string, v float64) bool
}
