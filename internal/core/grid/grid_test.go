package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/grid"
	"go.trai.ch/pathforge/internal/core/ports"
)

var (
	_ ports.Graph[domain.Point]       = (*grid.Grid)(nil)
	_ ports.LineOfSight[domain.Point] = (*grid.Grid)(nil)
	_ ports.Distancer[domain.Point]   = (*grid.Grid)(nil)
	_ ports.Indexer[domain.Point]     = (*grid.Grid)(nil)
	_ ports.GridView                  = (*grid.Grid)(nil)
)

type edge struct {
	to   domain.Point
	cost float64
}

func neighbors(g *grid.Grid, p domain.Point) []edge {
	var out []edge
	g.Neighbors(p, func(n domain.Point, c float64) {
		out = append(out, edge{to: n, cost: c})
	})
	return out
}

func newGrid(t *testing.T, w, h int, mode domain.DiagonalMode) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, mode)
	require.NoError(t, err)
	return g
}

func TestNew_InvalidDimensions(t *testing.T) {
	_, err := grid.New(0, 5, domain.DiagonalNever)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidDimensions))
}

func TestNeighbors_Order(t *testing.T) {
	tests := []struct {
		name string
		mode domain.DiagonalMode
		want []domain.Point
	}{
		{
			name: "never",
			mode: domain.DiagonalNever,
			want: []domain.Point{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		},
		{
			name: "always",
			mode: domain.DiagonalAlways,
			want: []domain.Point{
				{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1},
				{X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid(t, 3, 3, tt.mode)
			var got []domain.Point
			for _, e := range neighbors(g, domain.Pt(1, 1)) {
				got = append(got, e.to)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNeighbors_Costs(t *testing.T) {
	g := newGrid(t, 3, 3, domain.DiagonalAlways)
	require.NoError(t, g.SetCost(2, 1, 3))
	require.NoError(t, g.SetCost(2, 2, 2))

	costs := map[domain.Point]float64{}
	for _, e := range neighbors(g, domain.Pt(1, 1)) {
		costs[e.to] = e.cost
	}
	assert.InDelta(t, 3.0, costs[domain.Pt(2, 1)], 1e-12)
	assert.InDelta(t, 2*math.Sqrt2, costs[domain.Pt(2, 2)], 1e-12)
	assert.InDelta(t, 1.0, costs[domain.Pt(0, 1)], 1e-12)
	assert.InDelta(t, math.Sqrt2, costs[domain.Pt(0, 0)], 1e-12)
}

func TestNeighbors_DiagonalPolicies(t *testing.T) {
	// Block (1,0) so the step (0,0)->(1,1) squeezes past one obstacle.
	setup := func(mode domain.DiagonalMode) *grid.Grid {
		g := newGrid(t, 3, 3, mode)
		require.NoError(t, g.SetBlocked(1, 0, true))
		return g
	}

	hasDiagonal := func(g *grid.Grid) bool {
		for _, e := range neighbors(g, domain.Pt(0, 0)) {
			if e.to == domain.Pt(1, 1) {
				return true
			}
		}
		return false
	}

	assert.True(t, hasDiagonal(setup(domain.DiagonalAlways)))
	assert.False(t, hasDiagonal(setup(domain.DiagonalNoCutCorners)))
	assert.False(t, hasDiagonal(setup(domain.DiagonalNever)))
}

func TestNeighbors_SkipsBlockedAndOutOfBounds(t *testing.T) {
	g := newGrid(t, 2, 2, domain.DiagonalAlways)
	require.NoError(t, g.SetBlocked(1, 1, true))

	got := neighbors(g, domain.Pt(0, 0))
	require.Len(t, got, 2)
	assert.Equal(t, domain.Pt(0, 1), got[0].to)
	assert.Equal(t, domain.Pt(1, 0), got[1].to)

	assert.Empty(t, neighbors(g, domain.Pt(1, 1)), "blocked cells have no outgoing edges")
}

func TestMutations(t *testing.T) {
	g := newGrid(t, 4, 4, domain.DiagonalNever)

	t.Run("out of bounds", func(t *testing.T) {
		err := g.SetBlocked(4, 0, true)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrOutOfBounds))

		err = g.SetCost(-1, 0, 2)
		assert.True(t, errors.Is(err, domain.ErrOutOfBounds))
	})

	t.Run("invalid cost", func(t *testing.T) {
		for _, c := range []float64{0, -1, math.Inf(1), math.NaN()} {
			err := g.SetCost(0, 0, c)
			assert.True(t, errors.Is(err, domain.ErrInvalidCost), "cost %v", c)
		}
	})

	t.Run("set cost keeps blocked flag", func(t *testing.T) {
		require.NoError(t, g.SetBlocked(2, 2, true))
		require.NoError(t, g.SetCost(2, 2, 5))
		assert.False(t, g.IsPassable(domain.Pt(2, 2)))
		assert.InDelta(t, 5.0, g.CellCost(domain.Pt(2, 2)), 1e-12)
	})

	t.Run("region and clear", func(t *testing.T) {
		g.SetRegionBlocked(domain.Rect{X: -1, Y: 1, Width: 3, Height: 2}, true)
		assert.False(t, g.IsPassable(domain.Pt(0, 1)))
		assert.False(t, g.IsPassable(domain.Pt(1, 2)))
		assert.True(t, g.IsPassable(domain.Pt(2, 1)))

		g.Clear()
		for y := range 4 {
			for x := range 4 {
				assert.True(t, g.IsPassable(domain.Pt(x, y)))
				assert.InDelta(t, grid.DefaultCost, g.CellCost(domain.Pt(x, y)), 1e-12)
			}
		}
	})
}

func TestUniformCost(t *testing.T) {
	g := newGrid(t, 3, 3, domain.DiagonalAlways)

	c, ok := g.UniformCost()
	assert.True(t, ok)
	assert.InDelta(t, 1.0, c, 1e-12)

	require.NoError(t, g.SetCost(1, 1, 4))
	_, ok = g.UniformCost()
	assert.False(t, ok)

	// A blocked cell's cost does not count.
	require.NoError(t, g.SetBlocked(1, 1, true))
	_, ok = g.UniformCost()
	assert.True(t, ok)

	for y := range 3 {
		for x := range 3 {
			require.NoError(t, g.SetCost(x, y, 2))
		}
	}
	c, ok = g.UniformCost()
	assert.True(t, ok)
	assert.InDelta(t, 2.0, c, 1e-12)
}

func TestLineOfSight(t *testing.T) {
	g := newGrid(t, 5, 5, domain.DiagonalAlways)
	assert.True(t, g.LineOfSight(domain.Pt(0, 0), domain.Pt(4, 4)))
	assert.True(t, g.LineOfSight(domain.Pt(0, 0), domain.Pt(4, 1)))

	require.NoError(t, g.SetBlocked(2, 2, true))
	assert.False(t, g.LineOfSight(domain.Pt(0, 0), domain.Pt(4, 4)))
	assert.False(t, g.LineOfSight(domain.Pt(4, 4), domain.Pt(0, 0)))
	assert.True(t, g.LineOfSight(domain.Pt(0, 4), domain.Pt(4, 4)))

	assert.False(t, g.LineOfSight(domain.Pt(0, 0), domain.Pt(2, 2)), "endpoints are checked")
	assert.False(t, g.LineOfSight(domain.Pt(0, 0), domain.Pt(5, 0)), "out of bounds")
}

func TestLineOfSight_CornerSqueeze(t *testing.T) {
	build := func(mode domain.DiagonalMode) *grid.Grid {
		g := newGrid(t, 2, 2, mode)
		require.NoError(t, g.SetBlocked(1, 0, true))
		require.NoError(t, g.SetBlocked(0, 1, true))
		return g
	}

	assert.True(t, build(domain.DiagonalAlways).LineOfSight(domain.Pt(0, 0), domain.Pt(1, 1)))
	assert.False(t, build(domain.DiagonalNoCutCorners).LineOfSight(domain.Pt(0, 0), domain.Pt(1, 1)))
}

func TestDistanceAndStepCost(t *testing.T) {
	g := newGrid(t, 5, 5, domain.DiagonalAlways)

	assert.InDelta(t, 5.0, g.Distance(domain.Pt(0, 0), domain.Pt(3, 4)), 1e-9)
	assert.InDelta(t, 0.0, g.Distance(domain.Pt(1, 1), domain.Pt(1, 1)), 1e-12)

	require.NoError(t, g.SetCost(1, 0, 3))
	assert.InDelta(t, 3.0, g.StepCost(domain.Pt(0, 0), domain.Pt(1, 0)), 1e-12)
	assert.InDelta(t, 3.0, g.Distance(domain.Pt(0, 0), domain.Pt(1, 0)), 1e-12)
	assert.InDelta(t, math.Sqrt2, g.StepCost(domain.Pt(0, 0), domain.Pt(1, 1)), 1e-12)
	assert.True(t, math.IsInf(g.StepCost(domain.Pt(0, 0), domain.Pt(2, 0)), 1))
}

func TestIndexer(t *testing.T) {
	g := newGrid(t, 7, 3, domain.DiagonalNever)
	assert.Equal(t, 21, g.NodeCount())
	for i := range g.NodeCount() {
		assert.Equal(t, i, g.NodeIndex(g.NodeAt(i)))
	}
	assert.Equal(t, -1, g.NodeIndex(domain.Pt(7, 0)))
}

func TestFromSpec(t *testing.T) {
	spec := domain.GridSpec{
		Width:    4,
		Height:   3,
		Diagonal: domain.DiagonalNoCutCorners,
		Blocked:  []domain.Point{{X: 3, Y: 2}},
		Regions:  []domain.Rect{{X: 1, Y: 0, Width: 1, Height: 2}},
		Costs:    []domain.CellCost{{At: domain.Pt(0, 2), Cost: 2.5}},
	}

	g, err := grid.FromSpec(spec)
	require.NoError(t, err)
	assert.Equal(t, domain.DiagonalNoCutCorners, g.Diagonal())
	assert.False(t, g.IsPassable(domain.Pt(3, 2)))
	assert.False(t, g.IsPassable(domain.Pt(1, 0)))
	assert.False(t, g.IsPassable(domain.Pt(1, 1)))
	assert.True(t, g.IsPassable(domain.Pt(1, 2)))
	assert.InDelta(t, 2.5, g.CellCost(domain.Pt(0, 2)), 1e-12)

	spec.Costs = []domain.CellCost{{At: domain.Pt(9, 9), Cost: 1}}
	_, err = grid.FromSpec(spec)
	assert.True(t, errors.Is(err, domain.ErrOutOfBounds))
}
