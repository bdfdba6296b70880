package search

import (
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
)

// Visible reports whether a straight segment joins a and b in g.
//
// Worlds implementing ports.LineOfSight answer directly. Grid-shaped worlds
// without it are raycast along the Bresenham line, testing each cell for
// passability. Any other world only sees a node from itself.
func Visible[N comparable](g ports.Graph[N], a, b N) bool {
	if los, ok := g.(ports.LineOfSight[N]); ok {
		return los.LineOfSight(a, b)
	}
	if pg, ok := any(g).(ports.Graph[domain.Point]); ok {
		pa, pb := any(a).(domain.Point), any(b).(domain.Point)
		for p := range domain.Line(pa, pb) {
			if !pg.IsPassable(p) {
				return false
			}
		}
		return true
	}
	return a == b
}

// SegmentCost prices the straight segment from a to b, falling back to the
// heuristic estimate when the world cannot price segments itself.
func SegmentCost[N comparable](g ports.Graph[N], h ports.Heuristic[N], a, b N) float64 {
	if d, ok := g.(ports.Distancer[N]); ok {
		return d.Distance(a, b)
	}
	return orZero(h).Estimate(a, b)
}
