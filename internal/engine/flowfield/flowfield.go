// Package flowfield precomputes a direction field toward a single target so
// any number of agents can steer with constant-time lookups.
package flowfield

import (
	"container/heap"
	"math"

	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/grid"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// none is the direction code of cells without a descent step.
const none uint8 = 4

// unit maps a direction code (dy+1)*3 + (dx+1) to its normalized vector.
var unit = func() [9]domain.Vector2 {
	var out [9]domain.Vector2
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			out[code(dx, dy)] = domain.Vector2{X: float64(dx), Y: float64(dy)}.Normalize()
		}
	}
	return out
}()

func code(dx, dy int) uint8 {
	return uint8((dy+1)*3 + (dx + 1))
}

// Field holds, for every cell of a grid, the cost of reaching the target
// and the direction of the cheapest next step.
//
// A Field is a snapshot: it does not observe later grid mutations. It is safe
// for concurrent reads.
type Field struct {
	width  int
	height int
	target domain.Point
	dist   []float64
	dir    []uint8
}

// Compute runs a Dijkstra sweep outward from target, then assigns each
// reachable cell the neighbor with the smallest distance. Ties keep the first
// neighbor in grid order: cardinals (+y, +x, -y, -x), then diagonals.
func Compute(g *grid.Grid, target domain.Point, opts ...Option) (*Field, error) {
	if !g.IsPassable(target) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidNode, "flow field target is not passable"), "target", target.String())
	}
	cfg := newConfig(opts)

	f := &Field{
		width:  g.Width(),
		height: g.Height(),
		target: target,
		dist:   make([]float64, g.Width()*g.Height()),
		dir:    make([]uint8, g.Width()*g.Height()),
	}
	f.integrate(g)
	if err := f.orient(g, cfg.Workers); err != nil {
		return nil, err
	}
	return f, nil
}

// integrate fills dist with the cheapest cost from each cell to the target.
// Moving from c to an adjacent p costs g.StepCost(c, p).
func (f *Field) integrate(g *grid.Grid) {
	for i := range f.dist {
		f.dist[i] = math.Inf(1)
	}
	t := f.index(f.target)
	f.dist[t] = 0

	q := &queue{{cell: int32(t)}}
	for q.Len() > 0 {
		top := heap.Pop(q).(item)
		if top.dist > f.dist[top.cell] {
			continue
		}
		p := f.point(int(top.cell))
		g.Neighbors(p, func(c domain.Point, _ float64) {
			d := top.dist + g.StepCost(c, p)
			if i := f.index(c); d < f.dist[i] {
				f.dist[i] = d
				heap.Push(q, item{cell: int32(i), dist: d})
			}
		})
	}
}

// orient assigns descent directions in parallel row bands.
// Each band writes only its own cells.
func (f *Field) orient(g *grid.Grid, workers int) error {
	workers = min(max(workers, 1), f.height)
	rows := (f.height + workers - 1) / workers

	var eg errgroup.Group
	for y0 := 0; y0 < f.height; y0 += rows {
		y1 := min(y0+rows, f.height)
		eg.Go(func() error {
			f.orientRows(g, y0, y1)
			return nil
		})
	}
	return eg.Wait()
}

func (f *Field) orientRows(g *grid.Grid, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := range f.width {
			p := domain.Pt(x, y)
			i := f.index(p)
			f.dir[i] = none
			best := f.dist[i]
			if p == f.target || math.IsInf(best, 1) {
				continue
			}
			g.Neighbors(p, func(n domain.Point, _ float64) {
				if d := f.dist[f.index(n)]; d < best {
					best = d
					f.dir[i] = code(n.X-p.X, n.Y-p.Y)
				}
			})
		}
	}
}

// Target returns the cell every direction leads to.
func (f *Field) Target() domain.Point { return f.target }

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// Reachable reports whether p can reach the target.
func (f *Field) Reachable(p domain.Point) bool {
	return f.inBounds(p) && !math.IsInf(f.dist[f.index(p)], 1)
}

// Distance returns the cost from p to the target, or +Inf if p is unreachable.
func (f *Field) Distance(p domain.Point) float64 {
	if !f.inBounds(p) {
		return math.Inf(1)
	}
	return f.dist[f.index(p)]
}

// Direction returns the unit vector of the next step from p. It is zero at
// the target, at unreachable cells and outside the grid.
func (f *Field) Direction(p domain.Point) domain.Vector2 {
	if !f.inBounds(p) {
		return domain.Vector2{}
	}
	return unit[f.dir[f.index(p)]]
}

// Next returns the neighbor of p one step closer to the target.
func (f *Field) Next(p domain.Point) (domain.Point, bool) {
	if !f.inBounds(p) {
		return domain.Point{}, false
	}
	c := f.dir[f.index(p)]
	if c == none {
		return domain.Point{}, false
	}
	return p.Add(int(c%3)-1, int(c/3)-1), true
}

// Trace follows directions from p to the target. It returns nil if p is
// unreachable and a single-cell path at the target.
func (f *Field) Trace(p domain.Point) []domain.Point {
	if !f.Reachable(p) {
		return nil
	}
	path := []domain.Point{p}
	for p != f.target {
		next, ok := f.Next(p)
		if !ok || len(path) > len(f.dist) {
			return nil
		}
		p = next
		path = append(path, p)
	}
	return path
}

func (f *Field) inBounds(p domain.Point) bool {
	return p.X >= 0 && p.X < f.width && p.Y >= 0 && p.Y < f.height
}

func (f *Field) index(p domain.Point) int {
	return p.Y*f.width + p.X
}

func (f *Field) point(i int) domain.Point {
	return domain.Pt(i%f.width, i/f.width)
}
