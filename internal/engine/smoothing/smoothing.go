// Package smoothing removes redundant waypoints from a path by string pulling.
package smoothing

import (
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/pathforge/internal/engine/search"
)

// costSlack absorbs floating point noise when comparing a shortcut with the
// waypoints it replaces.
const costSlack = 1e-9

// Path walks path greedily: from each kept waypoint it jumps to the furthest
// later waypoint that is visible and no more expensive to reach directly than
// along the path. Segments are priced with search.SegmentCost.
//
// The first and last nodes are always kept. Smoothing a smoothed path returns
// it unchanged.
func Path[N comparable](g ports.Graph[N], h ports.Heuristic[N], path []N) []N {
	out, _ := smooth(g, h, path)
	return out
}

// Result smooths a found result and lowers its Cost by what the shortcuts
// saved. Other results are returned as is.
func Result[N comparable](g ports.Graph[N], h ports.Heuristic[N], r domain.PathResult[N]) domain.PathResult[N] {
	if !r.Found() {
		return r
	}
	out, saved := smooth(g, h, r.Path)
	r.Path = out
	r.Cost -= saved
	return r
}

func smooth[N comparable](g ports.Graph[N], h ports.Heuristic[N], path []N) ([]N, float64) {
	if len(path) < 3 {
		return append([]N(nil), path...), 0
	}

	// prefix[i] is the cost along path from path[0] to path[i].
	prefix := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		prefix[i] = prefix[i-1] + search.SegmentCost(g, h, path[i-1], path[i])
	}

	out := []N{path[0]}
	saved := 0.0
	for cur := 0; cur < len(path)-1; {
		next := cur + 1
		for j := len(path) - 1; j > cur+1; j-- {
			if !search.Visible(g, path[cur], path[j]) {
				continue
			}
			direct := search.SegmentCost(g, h, path[cur], path[j])
			if along := prefix[j] - prefix[cur]; direct <= along+costSlack {
				next = j
				saved += max(along-direct, 0)
				break
			}
		}
		out = append(out, path[next])
		cur = next
	}
	return out, saved
}
