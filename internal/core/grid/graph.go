package grid

import (
	"math"

	"go.trai.ch/pathforge/internal/core/domain"
)

// Neighbors visits the passable neighbors of p in a fixed order: the four
// cardinals (+y, +x, -y, -x), then the diagonals the policy allows
// (+x+y, +x-y, -x+y, -x-y). The edge cost is the target cell's cost,
// scaled by √2 for diagonal moves.
func (g *Grid) Neighbors(p domain.Point, visit func(neighbor domain.Point, cost float64)) {
	if !g.IsPassable(p) {
		return
	}
	for _, d := range cardinalDirs {
		n := p.Add(d.X, d.Y)
		if g.IsPassable(n) {
			visit(n, g.cost[g.index(n.X, n.Y)])
		}
	}
	if g.diagonal == domain.DiagonalNever {
		return
	}
	for _, d := range diagonalDirs {
		if !g.CanMoveDiagonal(p, d.X, d.Y) {
			continue
		}
		n := p.Add(d.X, d.Y)
		visit(n, g.cost[g.index(n.X, n.Y)]*domain.Sqrt2)
	}
}

// CanMoveDiagonal reports whether the policy allows the diagonal step (dx, dy) from p.
func (g *Grid) CanMoveDiagonal(p domain.Point, dx, dy int) bool {
	if !g.IsPassable(p.Add(dx, dy)) {
		return false
	}
	switch g.diagonal {
	case domain.DiagonalAlways:
		return true
	case domain.DiagonalNoCutCorners:
		return g.IsPassable(p.Add(dx, 0)) && g.IsPassable(p.Add(0, dy))
	default:
		return false
	}
}

// StepCost returns the cost of the single move from a to an adjacent cell b,
// or +Inf if the move is not an edge of the grid.
func (g *Grid) StepCost(a, b domain.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if !g.IsPassable(a) || !g.IsPassable(b) || dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return math.Inf(1)
	}
	c := g.cost[g.index(b.X, b.Y)]
	if dx == 0 || dy == 0 {
		return c
	}
	if !g.CanMoveDiagonal(a, dx, dy) {
		return math.Inf(1)
	}
	return c * domain.Sqrt2
}

// LineOfSight reports whether every cell on the Bresenham line from a to b,
// both endpoints included, is passable. Unless the policy is Always, a
// diagonal step on the line also needs both cells it squeezes between open.
func (g *Grid) LineOfSight(a, b domain.Point) bool {
	prev := a
	for cur := range domain.Line(a, b) {
		if !g.IsPassable(cur) {
			return false
		}
		if prev.X != cur.X && prev.Y != cur.Y && g.diagonal != domain.DiagonalAlways {
			if !g.IsPassable(domain.Pt(cur.X, prev.Y)) || !g.IsPassable(domain.Pt(prev.X, cur.Y)) {
				return false
			}
		}
		prev = cur
	}
	return true
}

// Distance prices the straight segment from a to b: its Euclidean length
// times the mean cost of the cells the segment enters. Adjacent moves price
// the same as StepCost.
func (g *Grid) Distance(a, b domain.Point) float64 {
	if a == b {
		return 0
	}
	var sum float64
	var n int
	for cur := range domain.Line(a, b) {
		if cur != a {
			sum += g.CellCost(cur)
			n++
		}
	}
	length := math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
	return length * sum / float64(n)
}

// NodeCount implements ports.Indexer.
func (g *Grid) NodeCount() int {
	return g.width * g.height
}

// NodeIndex implements ports.Indexer. Out-of-bounds points map to -1.
func (g *Grid) NodeIndex(p domain.Point) int {
	if !g.InBounds(p) {
		return -1
	}
	return g.index(p.X, p.Y)
}

// NodeAt implements ports.Indexer.
func (g *Grid) NodeAt(i int) domain.Point {
	return domain.Pt(i%g.width, i/g.width)
}
