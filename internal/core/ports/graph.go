package ports

// Graph is a world a search can traverse.
//
// Neighbors calls visit once per outgoing edge of node with the neighbor and a
// non-negative edge cost. The order is up to the implementation but must be
// deterministic for a fixed world state.
type Graph[N comparable] interface {
	IsPassable(node N) bool
	Neighbors(node N, visit func(neighbor N, cost float64))
}

// LineOfSight is implemented by worlds that can test for an unobstructed
// straight segment between two nodes.
type LineOfSight[N comparable] interface {
	LineOfSight(a, b N) bool
}

// Distancer is implemented by worlds that can price a straight segment
// between two nodes, as used by any-angle search and smoothing.
type Distancer[N comparable] interface {
	Distance(a, b N) float64
}

// Indexer is implemented by dense worlds whose nodes map onto [0, NodeCount()).
// Searches use it to keep per-node state in flat arrays instead of maps.
type Indexer[N comparable] interface {
	NodeCount() int
	NodeIndex(node N) int
	NodeAt(index int) N
}

// Heuristic estimates the remaining cost between two nodes.
// Estimates must be non-negative; admissibility only affects optimality.
type Heuristic[N comparable] interface {
	Estimate(from, to N) float64
}
