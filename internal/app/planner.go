package app

import (
	"strings"

	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/grid"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/pathforge/internal/engine/hierarchy"
	"go.trai.ch/pathforge/internal/engine/pathcache"
	"go.trai.ch/pathforge/internal/engine/search"
	"go.trai.ch/pathforge/internal/engine/smoothing"
	"go.trai.ch/zerr"
)

// Overrides replaces scenario search settings. Zero values keep the
// scenario's setting; the booleans can only switch a feature on.
type Overrides struct {
	Algorithm     string
	Heuristic     string
	Weight        float64
	MaxExpansions int
	TieBreaking   bool
	Smooth        bool
	ClusterSize   int
}

func (o Overrides) apply(s domain.SearchSettings) domain.SearchSettings {
	if o.Algorithm != "" {
		s.Algorithm = o.Algorithm
	}
	if o.Heuristic != "" {
		s.Heuristic = o.Heuristic
	}
	if o.Weight > 0 {
		s.HeuristicWeight = o.Weight
	}
	if o.MaxExpansions > 0 {
		s.MaxExpansions = o.MaxExpansions
	}
	if o.ClusterSize > 0 {
		s.ClusterSize = o.ClusterSize
	}
	s.TieBreaking = s.TieBreaking || o.TieBreaking
	s.Smooth = s.Smooth || o.Smooth

	s.Algorithm = strings.ToLower(strings.TrimSpace(s.Algorithm))
	if s.Algorithm == "" {
		s.Algorithm = domain.AlgorithmAStar
	}
	if s.HeuristicWeight <= 0 {
		s.HeuristicWeight = 1
	}
	if s.ClusterSize <= 0 {
		s.ClusterSize = hierarchy.DefaultClusterSize
	}
	return s
}

// planner answers queries on one scenario world with fixed settings.
type planner struct {
	grid      *grid.Grid
	settings  domain.SearchSettings
	caching   domain.CacheSettings
	heuristic ports.Heuristic[domain.Point]
	searcher  pathcache.Searcher[domain.Point]
	opts      []search.Option
	cache     *pathcache.Cache[domain.Point]
}

func newPlanner(sc *domain.Scenario, o Overrides, noCache bool) (*planner, error) {
	g, err := grid.FromSpec(sc.Grid)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build grid")
	}

	p := &planner{grid: g, settings: o.apply(sc.Search), caching: sc.Cache}

	h, err := domain.ParseHeuristic(p.settings.Heuristic)
	if err != nil {
		return nil, err
	}
	p.heuristic = h

	p.searcher, err = searcherFor(p.settings, g, h)
	if err != nil {
		return nil, err
	}

	p.opts = []search.Option{
		search.WithHeuristicWeight(p.settings.HeuristicWeight),
		search.WithTieBreaking(p.settings.TieBreaking),
		search.WithMaxExpansions(p.settings.MaxExpansions),
	}

	if !noCache && sc.Cache.Capacity > 0 {
		p.cache = pathcache.New[domain.Point](sc.Cache.Capacity, sc.Cache.TTL).WithSearcher(p.searcher)
	}
	return p, nil
}

func searcherFor(
	settings domain.SearchSettings,
	g *grid.Grid,
	h ports.Heuristic[domain.Point],
) (pathcache.Searcher[domain.Point], error) {
	switch settings.Algorithm {
	case domain.AlgorithmAStar:
		return search.Search[domain.Point], nil
	case domain.AlgorithmTheta:
		return search.ThetaStar[domain.Point], nil
	case domain.AlgorithmJPS:
		return func(
			_ ports.Graph[domain.Point],
			start, goal domain.Point,
			h ports.Heuristic[domain.Point],
			opts ...search.Option,
		) (domain.PathResult[domain.Point], error) {
			return search.JumpPointSearch(g, start, goal, h, opts...)
		}, nil
	case domain.AlgorithmHPA:
		hg, err := hierarchy.New(g, settings.ClusterSize, h)
		if err != nil {
			return nil, err
		}
		return func(
			_ ports.Graph[domain.Point],
			start, goal domain.Point,
			h ports.Heuristic[domain.Point],
			opts ...search.Option,
		) (domain.PathResult[domain.Point], error) {
			return hg.Search(start, goal, h, opts...)
		}, nil
	default:
		return nil, zerr.With(
			zerr.Wrap(domain.ErrUnknownAlgorithm, "failed to resolve algorithm"), "algorithm", settings.Algorithm)
	}
}

// plan answers one query through the cache when there is one, then smooths
// found paths if enabled.
func (p *planner) plan(from, to domain.Point) (domain.PathResult[domain.Point], error) {
	var (
		r   domain.PathResult[domain.Point]
		err error
	)
	if p.cache != nil {
		r, err = p.cache.Search(p.grid, from, to, p.heuristic, p.opts...)
	} else {
		r, err = p.searcher(p.grid, from, to, p.heuristic, p.opts...)
	}
	if err != nil {
		return r, err
	}
	if p.settings.Smooth && r.Found() {
		r = smoothing.Result(p.grid, p.heuristic, r)
	}
	return r, nil
}

// adopt takes over the cache of prev, the planner of an earlier version of
// the same scenario, when both search alike on grids of the same shape.
// Entries the edit may have made stale are dropped: any cell that opened up
// or got cheaper clears the cache, as do expansion-capped searches; otherwise
// only entries touching a changed cell go.
func (p *planner) adopt(prev *planner) {
	if prev == nil || prev.cache == nil || p.cache == nil ||
		prev.settings != p.settings || prev.caching != p.caching ||
		prev.grid.Width() != p.grid.Width() || prev.grid.Height() != p.grid.Height() ||
		prev.grid.Diagonal() != p.grid.Diagonal() {
		return
	}

	changed, relaxed := diffCells(prev.grid, p.grid)
	switch {
	case len(changed) == 0:
	case relaxed || p.settings.MaxExpansions > 0:
		prev.cache.Clear()
	default:
		prev.cache.InvalidateRegion(func(c domain.Point) bool {
			_, ok := changed[c]
			return ok
		})
	}
	p.cache = prev.cache.WithSearcher(p.searcher)
}

// diffCells returns the cells whose state differs between two grids of the
// same shape, and whether any of them became passable or cheaper.
func diffCells(old, cur *grid.Grid) (map[domain.Point]struct{}, bool) {
	changed := make(map[domain.Point]struct{})
	relaxed := false
	for y := range cur.Height() {
		for x := range cur.Width() {
			c := domain.Pt(x, y)
			was, is := old.IsPassable(c), cur.IsPassable(c)
			wasCost, isCost := old.CellCost(c), cur.CellCost(c)
			if was == is && wasCost == isCost {
				continue
			}
			changed[c] = struct{}{}
			if is && (!was || isCost < wasCost) {
				relaxed = true
			}
		}
	}
	return changed, relaxed
}

func (p *planner) cacheStats() domain.CacheStats {
	if p.cache == nil {
		return domain.CacheStats{}
	}
	return p.cache.Stats()
}
