package domain

// PathStatus describes how a search ended.
type PathStatus int

const (
	// StatusNotFound means the frontier was exhausted without reaching the goal.
	StatusNotFound PathStatus = iota
	// StatusFound means Path runs from start to goal.
	StatusFound
	// StatusLimitExceeded means the search stopped at its expansion cap.
	StatusLimitExceeded
	// StatusPartial means Path is a provisional route ending short of the goal.
	StatusPartial
)

// String returns the lowercase name of the status.
func (s PathStatus) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not-found"
	case StatusLimitExceeded:
		return "limit-exceeded"
	case StatusPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// PathResult is the outcome of a search.
//
// Path is ordered start first. For StatusFound it ends at the goal and Cost is
// the sum of its edge costs. For StatusPartial it ends at the best node reached
// so far and Estimate holds the heuristic distance left to the goal.
type PathResult[N comparable] struct {
	Path     []N
	Cost     float64
	Expanded int
	Status   PathStatus
	Estimate float64
}

// Found reports whether the result holds a complete path.
func (r PathResult[N]) Found() bool {
	return r.Status == StatusFound
}

// Err converts an unsuccessful status into its sentinel error.
// It returns nil for found and partial results.
func (r PathResult[N]) Err() error {
	switch r.Status {
	case StatusNotFound:
		return ErrNoPathFound
	case StatusLimitExceeded:
		return ErrExpansionLimitExceeded
	default:
		return nil
	}
}

// Goal returns the last node of the path and whether the path is non-empty.
func (r PathResult[N]) Goal() (N, bool) {
	if len(r.Path) == 0 {
		var zero N
		return zero, false
	}
	return r.Path[len(r.Path)-1], true
}

// Clone returns a copy of r that does not share its Path backing array.
func (r PathResult[N]) Clone() PathResult[N] {
	out := r
	if r.Path != nil {
		out.Path = append(make([]N, 0, len(r.Path)), r.Path...)
	}
	return out
}

// CacheStats counts result cache events.
type CacheStats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
}

// Sub returns the per-field difference s - prev.
func (s CacheStats) Sub(prev CacheStats) CacheStats {
	return CacheStats{
		Hits:        s.Hits - prev.Hits,
		Misses:      s.Misses - prev.Misses,
		Evictions:   s.Evictions - prev.Evictions,
		Expirations: s.Expirations - prev.Expirations,
	}
}
