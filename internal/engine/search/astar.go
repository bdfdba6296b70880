package search

import (
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
)

// Search runs A* from start to goal. A nil heuristic behaves as domain.Zero
// and the search degenerates to Dijkstra.
//
// A missing path is reported through the result status, not the error.
// The error is non-nil only when start or goal is not passable.
func Search[N comparable](
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
	e.reset(start, goal)
	e.run()
	return e.result(), nil
}
