package search

import (
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/grid"
	"go.trai.ch/pathforge/internal/core/ports"
)

// JumpPointSearch runs jump point search on a uniform-cost grid. Only jump
// points enter the frontier, and Expanded counts jump points. The returned
// path is expanded back to single-cell steps so it matches Search's shape.
//
// Grids with mixed cell costs or the Never diagonal policy fall back to Search.
func JumpPointSearch(
	g *grid.Grid,
	start, goal domain.Point,
	h ports.Heuristic[domain.Point],
	opts ...Option,
) (domain.PathResult[domain.Point], error) {
	cost, uniform := g.UniformCost()
	if !uniform || g.Diagonal() == domain.DiagonalNever {
		return Search[domain.Point](g, start, goal, h, opts...)
	}
	if err := validateEndpoints[domain.Point](g, start, goal); err != nil {
		return domain.PathResult[domain.Point]{}, err
	}

	e := newEngine[domain.Point](NewConfig(opts...))
	e.bind(g, h)
	j := &jumper{e: e, grid: g, cost: cost, goal: goal}
	e.expand = j.expand
	e.reset(start, goal)
	e.run()

	res := e.result()
	if res.Found() {
		res.Path = fillJumps(res.Path)
	}
	return res, nil
}

type jumper struct {
	e    *engine[domain.Point]
	grid *grid.Grid
	cost float64
	goal domain.Point
	dirs []domain.Point
}

func (j *jumper) open(x, y int) bool {
	return j.grid.IsPassable(domain.Pt(x, y))
}

func (j *jumper) expand(id int32) {
	e := j.e
	cur := e.nodes.node(id)
	rec := e.nodes.at(id)
	g := rec.g

	j.dirs = j.dirs[:0]
	if rec.parent == noParent {
		j.grid.Neighbors(cur, func(n domain.Point, _ float64) {
			j.dirs = append(j.dirs, domain.Pt(n.X-cur.X, n.Y-cur.Y))
		})
	} else {
		p := e.nodes.node(rec.parent)
		dx, dy := sign(cur.X-p.X), sign(cur.Y-p.Y)
		if j.grid.Diagonal() == domain.DiagonalAlways {
			j.pruneAlways(cur, dx, dy)
		} else {
			j.pruneNoCutCorners(cur, dx, dy)
		}
	}

	for _, d := range j.dirs {
		jp, ok := j.jump(cur, d.X, d.Y)
		if !ok {
			continue
		}
		e.relax(id, jp, g+j.cost*octile(cur, jp))
	}
}

func (j *jumper) add(dx, dy int) {
	j.dirs = append(j.dirs, domain.Pt(dx, dy))
}

// pruneAlways keeps the natural and forced directions when corner cutting is allowed.
func (j *jumper) pruneAlways(c domain.Point, dx, dy int) {
	x, y := c.X, c.Y
	switch {
	case dx != 0 && dy != 0:
		if j.open(x, y+dy) {
			j.add(0, dy)
		}
		if j.open(x+dx, y) {
			j.add(dx, 0)
		}
		if j.open(x+dx, y+dy) {
			j.add(dx, dy)
		}
		if !j.open(x-dx, y) {
			j.add(-dx, dy)
		}
		if !j.open(x, y-dy) {
			j.add(dx, -dy)
		}
	case dx == 0:
		if j.open(x, y+dy) {
			j.add(0, dy)
		}
		if !j.open(x+1, y) {
			j.add(1, dy)
		}
		if !j.open(x-1, y) {
			j.add(-1, dy)
		}
	default:
		if j.open(x+dx, y) {
			j.add(dx, 0)
		}
		if !j.open(x, y+1) {
			j.add(dx, 1)
		}
		if !j.open(x, y-1) {
			j.add(dx, -1)
		}
	}
}

// pruneNoCutCorners keeps the natural and forced directions when a diagonal
// move needs both adjacent cardinals open. Straight moves also keep both
// perpendicular directions, since the corner a forced neighbor would be
// reached around can no longer be cut.
func (j *jumper) pruneNoCutCorners(c domain.Point, dx, dy int) {
	x, y := c.X, c.Y
	switch {
	case dx != 0 && dy != 0:
		v, hz := j.open(x, y+dy), j.open(x+dx, y)
		if v {
			j.add(0, dy)
		}
		if hz {
			j.add(dx, 0)
		}
		if v && hz {
			j.add(dx, dy)
		}
	case dx == 0:
		next, right, left := j.open(x, y+dy), j.open(x+1, y), j.open(x-1, y)
		if next {
			j.add(0, dy)
			if right {
				j.add(1, dy)
			}
			if left {
				j.add(-1, dy)
			}
		}
		if right {
			j.add(1, 0)
		}
		if left {
			j.add(-1, 0)
		}
	default:
		next, up, down := j.open(x+dx, y), j.open(x, y+1), j.open(x, y-1)
		if next {
			j.add(dx, 0)
			if up {
				j.add(dx, 1)
			}
			if down {
				j.add(dx, -1)
			}
		}
		if up {
			j.add(0, 1)
		}
		if down {
			j.add(0, -1)
		}
	}
}

// jump scans from p in direction (dx, dy) and returns the first jump point.
func (j *jumper) jump(p domain.Point, dx, dy int) (domain.Point, bool) {
	always := j.grid.Diagonal() == domain.DiagonalAlways
	diagonal := dx != 0 && dy != 0
	for {
		if diagonal && !always && (!j.open(p.X+dx, p.Y) || !j.open(p.X, p.Y+dy)) {
			return domain.Point{}, false
		}
		n := p.Add(dx, dy)
		x, y := n.X, n.Y
		if !j.open(x, y) {
			return domain.Point{}, false
		}
		if n == j.goal {
			return n, true
		}
		switch {
		case diagonal:
			if always && ((j.open(x-dx, y+dy) && !j.open(x-dx, y)) || (j.open(x+dx, y-dy) && !j.open(x, y-dy))) {
				return n, true
			}
			if _, ok := j.jump(n, dx, 0); ok {
				return n, true
			}
			if _, ok := j.jump(n, 0, dy); ok {
				return n, true
			}
		case always && dx != 0:
			if (j.open(x+dx, y+1) && !j.open(x, y+1)) || (j.open(x+dx, y-1) && !j.open(x, y-1)) {
				return n, true
			}
		case always:
			if (j.open(x+1, y+dy) && !j.open(x+1, y)) || (j.open(x-1, y+dy) && !j.open(x-1, y)) {
				return n, true
			}
		case dx != 0:
			if (j.open(x, y-1) && !j.open(x-dx, y-1)) || (j.open(x, y+1) && !j.open(x-dx, y+1)) {
				return n, true
			}
		default:
			if (j.open(x-1, y) && !j.open(x-1, y-dy)) || (j.open(x+1, y) && !j.open(x+1, y-dy)) {
				return n, true
			}
		}
		p = n
	}
}

// fillJumps expands a jump point path into unit steps. Consecutive jump
// points always lie on a straight or 45° line.
func fillJumps(jumps []domain.Point) []domain.Point {
	if len(jumps) < 2 {
		return jumps
	}
	path := make([]domain.Point, 0, len(jumps))
	path = append(path, jumps[0])
	for i := 1; i < len(jumps); i++ {
		cur, to := jumps[i-1], jumps[i]
		dx, dy := sign(to.X-cur.X), sign(to.Y-cur.Y)
		for cur != to {
			cur = cur.Add(dx, dy)
			path = append(path, cur)
		}
	}
	return path
}

func octile(a, b domain.Point) float64 {
	return domain.Diagonal{}.Estimate(a, b)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
