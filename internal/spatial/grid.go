package spatial

import (
	"math"
	"slices"

	"github.com/l1jgo/tickworld/internal/core/ecs"
)

// KindGrid is the resource kind of the shared spatial index.
const KindGrid ecs.Kind = "SpatialGrid"

// DefaultCellSize keeps a 3x3 neighbourhood of cells covering radius 20.
const DefaultCellSize = 20.0

type cellKey struct {
	cx int32
	cy int32
}

type point struct {
	x, y float64
}

// Grid is a cell-based index of entity positions on the XY plane.
// Accessed only from the frame loop goroutine, no locks.
type Grid struct {
	cellSize float64
	cells    map[cellKey]map[ecs.Entity]struct{}
	points   map[ecs.Entity]point
}

func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey]map[ecs.Entity]struct{}),
		points:   make(map[ecs.Entity]point),
	}
}

func (*Grid) Kind() ecs.Kind { return KindGrid }

// toCell clamps to the int32 range; NaN maps to cell 0.
func (g *Grid) toCell(v float64) int32 {
	c := math.Floor(v / g.cellSize)
	switch {
	case math.IsNaN(c):
		return 0
	case c <= math.MinInt32:
		return math.MinInt32
	case c >= math.MaxInt32:
		return math.MaxInt32
	}
	return int32(c)
}

func (g *Grid) key(x, y float64) cellKey {
	return cellKey{cx: g.toCell(x), cy: g.toCell(y)}
}

// Set places e at (x, y), moving it if it is already indexed.
func (g *Grid) Set(e ecs.Entity, x, y float64) {
	if old, ok := g.points[e]; ok {
		if g.key(old.x, old.y) == g.key(x, y) {
			g.points[e] = point{x, y}
			return
		}
		g.Remove(e)
	}
	k := g.key(x, y)
	cell := g.cells[k]
	if cell == nil {
		cell = make(map[ecs.Entity]struct{})
		g.cells[k] = cell
	}
	cell[e] = struct{}{}
	g.points[e] = point{x, y}
}

// Remove takes e out of the grid.
func (g *Grid) Remove(e ecs.Entity) {
	p, ok := g.points[e]
	if !ok {
		return
	}
	delete(g.points, e)
	k := g.key(p.x, p.y)
	if cell := g.cells[k]; cell != nil {
		delete(cell, e)
		if len(cell) == 0 {
			delete(g.cells, k)
		}
	}
}

// Nearby returns the entities within radius of (x, y), ascending by id.
// When the radius spans more cells than there are indexed entities the
// points are scanned directly, so cost is bounded by the population.
func (g *Grid) Nearby(x, y, radius float64) []ecs.Entity {
	result := []ecs.Entity{}
	if !(radius >= 0) || math.IsNaN(x) || math.IsNaN(y) {
		return result
	}
	r2 := radius * radius
	within := func(p point) bool {
		dx, dy := p.x-x, p.y-y
		return dx*dx+dy*dy <= r2
	}

	minX, maxX := int64(g.toCell(x-radius)), int64(g.toCell(x+radius))
	minY, maxY := int64(g.toCell(y-radius)), int64(g.toCell(y+radius))
	cells := float64(maxX-minX+1) * float64(maxY-minY+1)

	if cells > float64(len(g.points)) {
		for e, p := range g.points {
			if within(p) {
				result = append(result, e)
			}
		}
	} else {
		for cx := minX; cx <= maxX; cx++ {
			for cy := minY; cy <= maxY; cy++ {
				for e := range g.cells[cellKey{cx: int32(cx), cy: int32(cy)}] {
					if within(g.points[e]) {
						result = append(result, e)
					}
				}
			}
		}
	}
	slices.Sort(result)
	return result
}

func (g *Grid) Len() int { return len(g.points) }

// Clear drops every entry but keeps the cell size.
func (g *Grid) Clear() {
	clear(g.cells)
	clear(g.points)
}
