package hierarchy

import (
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/pathforge/internal/engine/search"
	"go.trai.ch/zerr"
)

// Search finds a path from start to goal on the base grid.
//
// Queries inside one cluster run A* directly. Otherwise start and goal are
// attached to the entrances of their clusters, the abstract graph is searched
// and each abstract edge is expanded back into grid steps. The result is
// valid but may cost more than the optimum. When the abstraction cannot
// connect the endpoints, which happens when the only crossings are diagonal
// corner steps, the query falls back to A* on the base grid.
//
// Expanded counts the nodes of every search the query ran. opts apply to each
// of them.
func (hg *Grid) Search(
	start, goal domain.Point,
	h ports.Heuristic[domain.Point],
	opts ...search.Option,
) (domain.PathResult[domain.Point], error) {
	if !hg.base.IsPassable(start) {
		return domain.PathResult[domain.Point]{}, zerr.With(zerr.Wrap(domain.ErrInvalidNode, "start is not passable"), "node", start)
	}
	if !hg.base.IsPassable(goal) {
		return domain.PathResult[domain.Point]{}, zerr.With(zerr.Wrap(domain.ErrInvalidNode, "goal is not passable"), "node", goal)
	}
	if hg.cluster(start) == hg.cluster(goal) {
		return search.Search[domain.Point](hg.base, start, goal, h, opts...)
	}

	q := &query{hg: hg, start: len(hg.nodes), goal: len(hg.nodes) + 1, from: start, to: goal}
	spent := q.attach(h, opts)

	r, err := search.Search[int](q, q.start, q.goal, &abstractHeuristic{q: q, h: h}, opts...)
	if err != nil {
		return domain.PathResult[domain.Point]{}, err
	}
	spent += r.Expanded

	switch r.Status {
	case domain.StatusFound:
		return domain.PathResult[domain.Point]{
			Path:     q.refine(r.Path),
			Cost:     r.Cost,
			Expanded: spent,
			Status:   domain.StatusFound,
		}, nil
	case domain.StatusLimitExceeded:
		return domain.PathResult[domain.Point]{Expanded: spent, Status: r.Status}, nil
	}

	fallback, err := search.Search[domain.Point](hg.base, start, goal, h, opts...)
	if err != nil {
		return domain.PathResult[domain.Point]{}, err
	}
	fallback.Expanded += spent
	return fallback, nil
}

// query is the abstract graph of one request: the shared entrances plus a
// start node with edges into its cluster and a goal node reachable from the
// entrances of its cluster.
type query struct {
	hg          *Grid
	start, goal int
	from, to    domain.Point
	out         []edge
	in          map[int]edge
}

// attach routes start to every entrance of its cluster and every entrance of
// the goal's cluster to goal, staying inside the clusters. It returns the
// nodes expanded doing so.
func (q *query) attach(h ports.Heuristic[domain.Point], opts []search.Option) int {
	hg := q.hg
	spent := 0
	q.in = make(map[int]edge)

	sc := hg.cluster(q.from)
	view := &clusterView{base: hg.base, area: hg.bounds(sc)}
	for _, id := range hg.clusters[sc] {
		r, err := search.Search[domain.Point](view, q.from, hg.nodes[id], h, opts...)
		if err != nil {
			continue
		}
		spent += r.Expanded
		if r.Found() {
			q.out = append(q.out, edge{to: id, cost: r.Cost, path: r.Path})
		}
	}

	gc := hg.cluster(q.to)
	view = &clusterView{base: hg.base, area: hg.bounds(gc)}
	for _, id := range hg.clusters[gc] {
		r, err := search.Search[domain.Point](view, hg.nodes[id], q.to, h, opts...)
		if err != nil {
			continue
		}
		spent += r.Expanded
		if r.Found() {
			q.in[id] = edge{to: q.goal, cost: r.Cost, path: r.Path}
		}
	}
	return spent
}

func (q *query) IsPassable(id int) bool {
	return id >= 0 && id <= q.goal
}

func (q *query) Neighbors(id int, visit func(int, float64)) {
	switch id {
	case q.start:
		for _, e := range q.out {
			visit(e.to, e.cost)
		}
	case q.goal:
	default:
		for _, e := range q.hg.edges[id] {
			visit(e.to, e.cost)
		}
		if e, ok := q.in[id]; ok {
			visit(q.goal, e.cost)
		}
	}
}

func (q *query) position(id int) domain.Point {
	switch id {
	case q.start:
		return q.from
	case q.goal:
		return q.to
	default:
		return q.hg.nodes[id]
	}
}

// segment returns the cheapest grid route behind the abstract edge a -> b.
func (q *query) segment(a, b int) []domain.Point {
	if b == q.goal {
		return q.in[a].path
	}
	edges := q.hg.edges[a]
	if a == q.start {
		edges = q.out
	}
	var best *edge
	for i := range edges {
		if edges[i].to == b && (best == nil || edges[i].cost < best.cost) {
			best = &edges[i]
		}
	}
	if best == nil {
		return nil
	}
	return best.path
}

// refine expands an abstract path into grid steps. Consecutive segments share
// their joining cell, which is kept once.
func (q *query) refine(ids []int) []domain.Point {
	path := []domain.Point{q.from}
	for i := 1; i < len(ids); i++ {
		seg := q.segment(ids[i-1], ids[i])
		if len(seg) > 1 {
			path = append(path, seg[1:]...)
		}
	}
	return path
}

// abstractHeuristic estimates abstract nodes by the grid positions they stand for.
type abstractHeuristic struct {
	q *query
	h ports.Heuristic[domain.Point]
}

func (a *abstractHeuristic) Estimate(from, to int) float64 {
	if a.h == nil {
		return 0
	}
	return a.h.Estimate(a.q.position(from), a.q.position(to))
}
