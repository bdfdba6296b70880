package search

import (
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
)

// ThetaStar runs any-angle search. When the parent of the node being expanded
// can see a neighbor, the neighbor may hang off that parent directly,
// removing staircase segments. Consecutive path nodes are therefore joined by
// visible segments rather than single edges, and Cost sums segment costs.
func ThetaStar[N comparable](
	g ports.Graph[N],
	start, goal N,
	h ports.Heuristic[N],
	opts ...Option,
) (domain.PathResult[N], error) {
	if err := validateEndpoints(g, start, goal); err != nil {
		return domain.PathResult[N]{}, err
	}
	e := newEngine[N](NewConfig(opts...))
	e.bind(g, h)
	t := &theta[N]{e: e}
	e.visitFn = t.visit
	e.reset(start, goal)
	e.run()
	return e.result(), nil
}

type theta[N comparable] struct {
	e *engine[N]
}

func (t *theta[N]) visit(n N, cost float64) {
	e := t.e
	if !validCost(cost) {
		return
	}
	cur := e.nodes.at(e.cur)
	parent, g := e.cur, cur.g+cost
	if cur.parent != noParent {
		pn := e.nodes.node(cur.parent)
		if Visible(e.graph, pn, n) {
			if alt := e.nodes.at(cur.parent).g + SegmentCost(e.graph, e.heuristic, pn, n); alt < g {
				parent, g = cur.parent, alt
			}
		}
	}
	e.relax(parent, n, g)
}
