package search

import (
	"container/heap"
	"math"

	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// engine is the resumable best-first search loop shared by every algorithm.
// Algorithms differ only in how they expand a node.
type engine[N comparable] struct {
	cfg       Config
	graph     ports.Graph[N]
	heuristic ports.Heuristic[N]
	goal      N

	nodes    nodeTable[N]
	open     frontier
	seq      uint64
	expanded int
	started  bool
	done     bool
	status   domain.PathStatus
	goalID   int32

	// best is the reached node closest to the goal by heuristic estimate,
	// not the lowest-f frontier node. Partial results route to it.
	best  int32
	bestH float64

	cur     int32
	expand  func(id int32)
	visitFn func(n N, cost float64)
}

func newEngine[N comparable](cfg Config) *engine[N] {
	e := &engine[N]{cfg: cfg}
	e.open.tieBreaking = cfg.TieBreaking
	e.visitFn = e.visit
	e.expand = e.expandNeighbors
	return e
}

// bind attaches the world and heuristic, sizing node storage for the world.
func (e *engine[N]) bind(g ports.Graph[N], h ports.Heuristic[N]) {
	e.graph = g
	e.heuristic = orZero(h)
	e.nodes = tableFor(g, e.nodes)
}

// reset clears all search state and seeds the frontier with start.
func (e *engine[N]) reset(start, goal N) {
	e.goal = goal
	e.nodes.reset()
	e.open.reset()
	e.seq = 0
	e.expanded = 0
	e.done = false
	e.status = domain.StatusNotFound
	e.goalID = noParent

	id, _ := e.nodes.acquire(start)
	e.nodes.at(id).g = 0
	h := e.heuristic.Estimate(start, goal)
	e.best, e.bestH = id, h
	e.push(id, 0, h)
	e.started = true
}

func (e *engine[N]) push(id int32, g, h float64) {
	e.seq++
	heap.Push(&e.open, entry{id: id, g: g, h: h, f: g + e.cfg.HeuristicWeight*h, seq: e.seq})
}

// advance expands at most one node and reports whether the search is terminal.
func (e *engine[N]) advance() bool {
	if e.done {
		return true
	}
	for e.open.Len() > 0 {
		top := heap.Pop(&e.open).(entry)
		rec := e.nodes.at(top.id)
		if top.g > rec.g || rec.closed {
			continue
		}
		if e.nodes.node(top.id) == e.goal {
			e.finish(domain.StatusFound, top.id)
			return true
		}
		if e.cfg.MaxExpansions > 0 && e.expanded >= e.cfg.MaxExpansions {
			heap.Push(&e.open, top)
			e.finish(domain.StatusLimitExceeded, noParent)
			return true
		}
		rec.closed = true
		e.expanded++
		e.cur = top.id
		e.expand(top.id)
		return false
	}
	e.finish(domain.StatusNotFound, noParent)
	return true
}

func (e *engine[N]) run() {
	for !e.advance() {
	}
}

func (e *engine[N]) finish(status domain.PathStatus, goalID int32) {
	e.done = true
	e.status = status
	e.goalID = goalID
}

func (e *engine[N]) expandNeighbors(id int32) {
	e.graph.Neighbors(e.nodes.node(id), e.visitFn)
}

// visit relaxes the edge from the node being expanded to n.
func (e *engine[N]) visit(n N, cost float64) {
	if !validCost(cost) {
		return
	}
	e.relax(e.cur, n, e.nodes.at(e.cur).g+cost)
}

// relax records parent as the predecessor of n if g improves on n's best cost.
func (e *engine[N]) relax(parent int32, n N, g float64) {
	id, ok := e.nodes.acquire(n)
	if !ok {
		return
	}
	rec := e.nodes.at(id)
	if g >= rec.g {
		return
	}
	rec.g = g
	rec.parent = parent
	rec.closed = false
	h := e.heuristic.Estimate(n, e.goal)
	e.push(id, g, h)
	if h < e.bestH {
		e.best, e.bestH = id, h
	}
}

// trace walks parent links from id back to the start.
func (e *engine[N]) trace(id int32) []N {
	n := 0
	limit := e.nodes.size()
	for cur := id; cur != noParent && n <= limit; cur = e.nodes.at(cur).parent {
		n++
	}
	path := make([]N, n)
	for i, cur := n-1, id; i >= 0; i, cur = i-1, e.nodes.at(cur).parent {
		path[i] = e.nodes.node(cur)
	}
	return path
}

func (e *engine[N]) result() domain.PathResult[N] {
	r := domain.PathResult[N]{Expanded: e.expanded, Status: e.status}
	if e.status == domain.StatusFound {
		r.Path = e.trace(e.goalID)
		r.Cost = e.nodes.at(e.goalID).g
	}
	return r
}

// partial returns the route to the best node reached so far.
func (e *engine[N]) partial() (domain.PathResult[N], bool) {
	if !e.started {
		return domain.PathResult[N]{}, false
	}
	return domain.PathResult[N]{
		Path:     e.trace(e.best),
		Cost:     e.nodes.at(e.best).g,
		Expanded: e.expanded,
		Status:   domain.StatusPartial,
		Estimate: e.bestH,
	}, true
}

func validCost(c float64) bool {
	return c >= 0 && !math.IsInf(c, 1)
}

func orZero[N comparable](h ports.Heuristic[N]) ports.Heuristic[N] {
	if h == nil {
		return domain.Zero[N]{}
	}
	return h
}

// validateEndpoints fails fast when start or goal cannot be part of a path.
func validateEndpoints[N comparable](g ports.Graph[N], start, goal N) error {
	if !g.IsPassable(start) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidNode, "start is not passable"), "node", start)
	}
	if !g.IsPassable(goal) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidNode, "goal is not passable"), "node", goal)
	}
	return nil
}
