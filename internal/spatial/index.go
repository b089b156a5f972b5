package spatial

import (
	"github.com/l1jgo/tickworld/internal/component"
	"github.com/l1jgo/tickworld/internal/core/ecs"
)

// IndexSystem rebuilds the Grid resource from every Position each tick,
// installing a Grid if the world has none.
type IndexSystem struct {
	cellSize float64
}

func NewIndexSystem(cellSize float64) *IndexSystem {
	return &IndexSystem{cellSize: cellSize}
}

func (s *IndexSystem) Name() string { return "spatial" }

func (s *IndexSystem) Dependencies() []ecs.Kind {
	return []ecs.Kind{component.KindPosition}
}

func (s *IndexSystem) Run(w *ecs.World, matched []ecs.Entity) {
	grid, ok := ecs.GetResource[*Grid](w)
	if !ok {
		grid = NewGrid(s.cellSize)
		w.AddResource(grid)
	}
	grid.Clear()
	for _, e := range matched {
		pos, ok := ecs.Get[*component.Position](w, e)
		if !ok {
			continue
		}
		grid.Set(e, pos.X, pos.Y)
	}
}

// Nearby answers a radius query against the world's Grid. Without a Grid it
// returns an empty slice.
func Nearby(w *ecs.World, x, y, radius float64) []ecs.Entity {
	grid, ok := ecs.GetResource[*Grid](w)
	if !ok {
		return []ecs.Entity{}
	}
	return grid.Nearby(x, y, radius)
}
