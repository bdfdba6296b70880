// Package hierarchy implements hierarchical path-finding (HPA*) over a grid:
// the grid is cut into square clusters, cluster borders get entrance nodes and
// an abstract graph links entrances with precomputed intra-cluster routes.
package hierarchy

import (
	"context"
	"runtime"

	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/grid"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/pathforge/internal/engine/search"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultClusterSize is the cluster edge length used when none is configured.
const DefaultClusterSize = 10

// edge is an abstract edge together with the grid route it stands for.
// path starts at the source entrance and ends at the target.
type edge struct {
	to   int
	cost float64
	path []domain.Point
}

// Grid is the abstraction of one grid snapshot. It is immutable after New and
// safe for concurrent queries. Rebuild it after mutating the base grid.
type Grid struct {
	base *grid.Grid
	size int
	cols int
	rows int

	nodes    []domain.Point
	ids      map[domain.Point]int
	edges    [][]edge
	clusters [][]int
}

type config struct {
	workers int
}

// Option configures New.
type Option func(*config)

// WithWorkers bounds how many clusters are processed at once. Values below 1
// use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// New builds the abstraction of g with square clusters of the given edge
// length. Intra-cluster routes are found with h and never leave their cluster.
func New(g *grid.Grid, clusterSize int, h ports.Heuristic[domain.Point], opts ...Option) (*Grid, error) {
	if clusterSize < 1 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidClusterSize, "failed to build hierarchy"), "size", clusterSize)
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}

	hg := &Grid{
		base: g,
		size: clusterSize,
		cols: (g.Width() + clusterSize - 1) / clusterSize,
		rows: (g.Height() + clusterSize - 1) / clusterSize,
		ids:  make(map[domain.Point]int),
	}
	hg.clusters = make([][]int, hg.cols*hg.rows)
	hg.placeEntrances()
	if err := hg.connectClusters(h, cfg.workers); err != nil {
		return nil, err
	}
	return hg, nil
}

// ClusterSize returns the cluster edge length.
func (hg *Grid) ClusterSize() int { return hg.size }

// Entrances returns the number of abstract nodes.
func (hg *Grid) Entrances() int { return len(hg.nodes) }

// Base returns the grid the abstraction was built from.
func (hg *Grid) Base() *grid.Grid { return hg.base }

func (hg *Grid) cluster(p domain.Point) int {
	return (p.Y/hg.size)*hg.cols + p.X/hg.size
}

// bounds returns the cells of cluster c.
func (hg *Grid) bounds(c int) domain.Rect {
	cx, cy := c%hg.cols, c/hg.cols
	x, y := cx*hg.size, cy*hg.size
	return domain.Rect{
		X:      x,
		Y:      y,
		Width:  min(hg.size, hg.base.Width()-x),
		Height: min(hg.size, hg.base.Height()-y),
	}
}

// placeEntrances scans every border between horizontally and vertically
// adjacent clusters for runs of cell pairs open on both sides, and puts one
// entrance pair in the middle of each run.
func (hg *Grid) placeEntrances() {
	w, h := hg.base.Width(), hg.base.Height()
	for cy := range hg.rows {
		for cx := 0; cx+1 < hg.cols; cx++ {
			x := (cx+1)*hg.size - 1
			hg.scanBorder(cy*hg.size, min((cy+1)*hg.size, h), func(i int) (domain.Point, domain.Point) {
				return domain.Pt(x, i), domain.Pt(x+1, i)
			})
		}
	}
	for cy := 0; cy+1 < hg.rows; cy++ {
		for cx := range hg.cols {
			y := (cy+1)*hg.size - 1
			hg.scanBorder(cx*hg.size, min((cx+1)*hg.size, w), func(i int) (domain.Point, domain.Point) {
				return domain.Pt(i, y), domain.Pt(i, y+1)
			})
		}
	}
}

func (hg *Grid) scanBorder(from, to int, pair func(i int) (domain.Point, domain.Point)) {
	run := -1
	for i := from; i <= to; i++ {
		open := false
		if i < to {
			a, b := pair(i)
			open = hg.base.IsPassable(a) && hg.base.IsPassable(b)
		}
		switch {
		case open && run < 0:
			run = i
		case !open && run >= 0:
			a, b := pair((run + i - 1) / 2)
			hg.link(a, b)
			run = -1
		}
	}
}

// link adds the entrance pair a, b and the crossing edges between them.
func (hg *Grid) link(a, b domain.Point) {
	ia, ib := hg.node(a), hg.node(b)
	hg.edges[ia] = append(hg.edges[ia], edge{to: ib, cost: hg.base.StepCost(a, b), path: []domain.Point{a, b}})
	hg.edges[ib] = append(hg.edges[ib], edge{to: ia, cost: hg.base.StepCost(b, a), path: []domain.Point{b, a}})
}

func (hg *Grid) node(p domain.Point) int {
	if id, ok := hg.ids[p]; ok {
		return id
	}
	id := len(hg.nodes)
	hg.nodes = append(hg.nodes, p)
	hg.edges = append(hg.edges, nil)
	hg.ids[p] = id
	c := hg.cluster(p)
	hg.clusters[c] = append(hg.clusters[c], id)
	return id
}

type routed struct {
	from int
	edge
}

// connectClusters links every pair of entrances sharing a cluster that can
// reach each other without leaving it. Clusters are searched concurrently and
// merged in cluster order so edge order does not depend on scheduling.
func (hg *Grid) connectClusters(h ports.Heuristic[domain.Point], workers int) error {
	found := make([][]routed, len(hg.clusters))
	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(workers)
	for c, members := range hg.clusters {
		if len(members) < 2 {
			continue
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			view := &clusterView{base: hg.base, area: hg.bounds(c)}
			for i, a := range members {
				for _, b := range members[i+1:] {
					r, err := search.Search[domain.Point](view, hg.nodes[a], hg.nodes[b], h)
					if err != nil {
						return zerr.With(err, "cluster", c)
					}
					if !r.Found() {
						continue
					}
					back := reversed(r.Path)
					found[c] = append(found[c],
						routed{from: a, edge: edge{to: b, cost: r.Cost, path: r.Path}},
						routed{from: b, edge: edge{to: a, cost: pathCost(hg.base, back), path: back}},
					)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for _, routes := range found {
		for _, r := range routes {
			hg.edges[r.from] = append(hg.edges[r.from], r.edge)
		}
	}
	return nil
}

func reversed(path []domain.Point) []domain.Point {
	out := make([]domain.Point, len(path))
	for i, p := range path {
		out[len(path)-1-i] = p
	}
	return out
}

func pathCost(g *grid.Grid, path []domain.Point) float64 {
	var cost float64
	for i := 1; i < len(path); i++ {
		cost += g.StepCost(path[i-1], path[i])
	}
	return cost
}

// clusterView restricts a grid to one cluster's cells.
type clusterView struct {
	base *grid.Grid
	area domain.Rect
}

func (v *clusterView) IsPassable(p domain.Point) bool {
	return v.area.Contains(p) && v.base.IsPassable(p)
}

func (v *clusterView) Neighbors(p domain.Point, visit func(domain.Point, float64)) {
	if !v.area.Contains(p) {
		return
	}
	v.base.Neighbors(p, func(n domain.Point, cost float64) {
		if v.area.Contains(n) {
			visit(n, cost)
		}
	})
}

// NodeCount, NodeIndex and NodeAt delegate to the base grid so cluster
// searches keep dense node storage.
func (v *clusterView) NodeCount() int { return v.base.NodeCount() }

func (v *clusterView) NodeIndex(p domain.Point) int { return v.base.NodeIndex(p) }

func (v *clusterView) NodeAt(i int) domain.Point { return v.base.NodeAt(i) }
