package search_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/grid"
)

func newGrid(t testing.TB, w, h int, mode domain.DiagonalMode) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, mode)
	require.NoError(t, err)
	return g
}

// serpentine builds a 64x64 maze of vertical walls at x = 2 mod 4 with a
// single gap alternating between bottom and top, plus pillars in the corridors.
func serpentine(t testing.TB, mode domain.DiagonalMode) *grid.Grid {
	t.Helper()
	g := newGrid(t, 64, 64, mode)
	for x := 2; x < 64; x += 4 {
		gap := 63
		if (x/4)%2 == 1 {
			gap = 0
		}
		for y := range 64 {
			if y != gap {
				require.NoError(t, g.SetBlocked(x, y, true))
			}
		}
	}
	for x := 0; x < 64; x += 4 {
		for y := 4; y < 60; y += 8 {
			require.NoError(t, g.SetBlocked(x, y, true))
		}
	}
	return g
}

// scattered blocks roughly density of the cells, keeping keep open.
func scattered(t testing.TB, seed uint64, w, h int, mode domain.DiagonalMode, density float64, keep ...domain.Point) *grid.Grid {
	t.Helper()
	g := newGrid(t, w, h, mode)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for y := range h {
		for x := range w {
			if rng.Float64() < density {
				require.NoError(t, g.SetBlocked(x, y, true))
			}
		}
	}
	for _, p := range keep {
		require.NoError(t, g.SetBlocked(p.X, p.Y, false))
	}
	return g
}

// weighted assigns costs in [1, 3] to every cell.
func weighted(t testing.TB, g *grid.Grid, seed uint64) {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 7))
	for y := range g.Height() {
		for x := range g.Width() {
			require.NoError(t, g.SetCost(x, y, 1+2*rng.Float64()))
		}
	}
}

// requireContiguous checks every step of path is a grid edge and returns the summed cost.
func requireContiguous(t testing.TB, g *grid.Grid, path []domain.Point) float64 {
	t.Helper()
	var total float64
	for i := 1; i < len(path); i++ {
		c := g.StepCost(path[i-1], path[i])
		require.False(t, math.IsInf(c, 1), "step %d %v -> %v is not an edge", i, path[i-1], path[i])
		total += c
	}
	return total
}

// requireVisible checks every segment of an any-angle path and returns the summed cost.
func requireVisible(t testing.TB, g *grid.Grid, path []domain.Point) float64 {
	t.Helper()
	var total float64
	for i := 1; i < len(path); i++ {
		require.True(t, g.LineOfSight(path[i-1], path[i]), "segment %v -> %v is obstructed", path[i-1], path[i])
		total += g.Distance(path[i-1], path[i])
	}
	return total
}

// opaque hides every optional capability of a grid except the core graph contract.
type opaque struct {
	g *grid.Grid
}

func (o opaque) IsPassable(p domain.Point) bool { return o.g.IsPassable(p) }

func (o opaque) Neighbors(p domain.Point, visit func(domain.Point, float64)) { o.g.Neighbors(p, visit) }

// recording notes every node the search expands.
type recording struct {
	*grid.Grid
	expanded []domain.Point
}

func (r *recording) Neighbors(p domain.Point, visit func(domain.Point, float64)) {
	r.expanded = append(r.expanded, p)
	r.Grid.Neighbors(p, visit)
}
