// Package grid implements a dense 2D grid world with per-cell costs and blocking.
package grid

import (
	"math"

	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultCost is the traversal cost of a cell that has not been assigned one.
const DefaultCost = 1.0

var (
	cardinalDirs = [4]domain.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}
	diagonalDirs = [4]domain.Point{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
)

// Grid is a rectangular lattice of cells addressed by domain.Point.
//
// Reads are safe for concurrent use. Mutations are not synchronized with
// readers; callers restart in-flight searches after mutating.
type Grid struct {
	width    int
	height   int
	diagonal domain.DiagonalMode
	blocked  []bool
	cost     []float64

	// costs tracks how many passable cells carry each cost value so
	// UniformCost can answer without a full scan.
	costs map[float64]int
}

// New creates a grid with every cell open at DefaultCost.
func New(width, height int, mode domain.DiagonalMode) (*Grid, error) {
	if width <= 0 || height <= 0 {
		err := zerr.Wrap(domain.ErrInvalidDimensions, "failed to create grid")
		err = zerr.With(err, "width", width)
		return nil, zerr.With(err, "height", height)
	}
	g := &Grid{
		width:    width,
		height:   height,
		diagonal: mode,
		blocked:  make([]bool, width*height),
		cost:     make([]float64, width*height),
		costs:    make(map[float64]int, 1),
	}
	g.Clear()
	return g, nil
}

// FromSpec builds a grid from a scenario description.
func FromSpec(spec domain.GridSpec) (*Grid, error) {
	g, err := New(spec.Width, spec.Height, spec.Diagonal)
	if err != nil {
		return nil, err
	}
	for _, r := range spec.Regions {
		g.SetRegionBlocked(r, true)
	}
	for _, p := range spec.Blocked {
		if err := g.SetBlocked(p.X, p.Y, true); err != nil {
			return nil, err
		}
	}
	for _, c := range spec.Costs {
		if err := g.SetCost(c.At.X, c.At.Y, c.Cost); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Diagonal returns the diagonal movement policy.
func (g *Grid) Diagonal() domain.DiagonalMode { return g.diagonal }

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p domain.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// IsPassable reports whether p is inside the grid and not blocked.
func (g *Grid) IsPassable(p domain.Point) bool {
	return g.InBounds(p) && !g.blocked[g.index(p.X, p.Y)]
}

// IsBlocked reports whether the in-bounds cell p is blocked. Out-of-bounds cells report true.
func (g *Grid) IsBlocked(p domain.Point) bool {
	return !g.IsPassable(p)
}

// CellCost returns the traversal cost of entering p, or +Inf outside the grid.
func (g *Grid) CellCost(p domain.Point) float64 {
	if !g.InBounds(p) {
		return math.Inf(1)
	}
	return g.cost[g.index(p.X, p.Y)]
}

// SetBlocked marks the cell at (x, y) as blocked or open.
func (g *Grid) SetBlocked(x, y int, blocked bool) error {
	p := domain.Pt(x, y)
	if !g.InBounds(p) {
		return g.outOfBounds(p)
	}
	i := g.index(x, y)
	if g.blocked[i] == blocked {
		return nil
	}
	if blocked {
		g.untrack(g.cost[i])
	} else {
		g.track(g.cost[i])
	}
	g.blocked[i] = blocked
	return nil
}

// SetCost sets the cost of entering the cell at (x, y). The blocked flag is left unchanged.
func (g *Grid) SetCost(x, y int, cost float64) error {
	p := domain.Pt(x, y)
	if !g.InBounds(p) {
		return g.outOfBounds(p)
	}
	if !(cost > 0) || math.IsInf(cost, 0) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidCost, "failed to set cell cost"), "cost", cost)
	}
	i := g.index(x, y)
	if !g.blocked[i] {
		g.untrack(g.cost[i])
		g.track(cost)
	}
	g.cost[i] = cost
	return nil
}

// SetRegionBlocked blocks or opens every cell of r that lies inside the grid.
func (g *Grid) SetRegionBlocked(r domain.Rect, blocked bool) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.Width, g.width), min(r.Y+r.Height, g.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			_ = g.SetBlocked(x, y, blocked)
		}
	}
}

// Clear opens every cell and resets costs to DefaultCost.
func (g *Grid) Clear() {
	for i := range g.blocked {
		g.blocked[i] = false
		g.cost[i] = DefaultCost
	}
	clear(g.costs)
	g.costs[DefaultCost] = len(g.cost)
}

// UniformCost reports the shared cost of all passable cells, if there is one.
func (g *Grid) UniformCost() (float64, bool) {
	switch len(g.costs) {
	case 0:
		return DefaultCost, true
	case 1:
		for c := range g.costs {
			return c, true
		}
	}
	return 0, false
}

func (g *Grid) track(cost float64) {
	g.costs[cost]++
}

func (g *Grid) untrack(cost float64) {
	if n := g.costs[cost]; n <= 1 {
		delete(g.costs, cost)
	} else {
		g.costs[cost] = n - 1
	}
}

func (g *Grid) outOfBounds(p domain.Point) error {
	err := zerr.Wrap(domain.ErrOutOfBounds, "failed to mutate cell")
	err = zerr.With(err, "cell", p.String())
	err = zerr.With(err, "width", g.width)
	return zerr.With(err, "height", g.height)
}
