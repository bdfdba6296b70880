package search_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/engine/search"
)

func TestSearch_EmptyGridDiagonal(t *testing.T) {
	g := newGrid(t, 5, 5, domain.DiagonalAlways)

	res, err := search.Search[domain.Point](g, domain.Pt(0, 0), domain.Pt(4, 4), domain.Diagonal{})
	require.NoError(t, err)
	require.True(t, res.Found())

	assert.Len(t, res.Path, 5)
	assert.Equal(t, domain.Pt(0, 0), res.Path[0])
	assert.Equal(t, domain.Pt(4, 4), res.Path[4])
	assert.InDelta(t, 4*math.Sqrt2, res.Cost, 1e-9)
	assert.Greater(t, res.Expanded, 0)
	assert.NoError(t, res.Err())
}

func TestSearch_WallForcesDetour(t *testing.T) {
	g := newGrid(t, 5, 5, domain.DiagonalAlways)
	wall := []domain.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	for _, p := range wall {
		require.NoError(t, g.SetBlocked(p.X, p.Y, true))
	}

	res, err := search.Search[domain.Point](g, domain.Pt(0, 0), domain.Pt(4, 4), domain.Diagonal{})
	require.NoError(t, err)
	require.True(t, res.Found())

	assert.Greater(t, res.Cost, 4*math.Sqrt2)
	for _, p := range wall {
		assert.False(t, g.IsPassable(p))
		assert.NotContains(t, res.Path, p)
	}
	assert.InDelta(t, requireContiguous(t, g, res.Path), res.Cost, 1e-9)
}

func TestSearch_PathIsValidAndOptimal(t *testing.T) {
	modes := []domain.DiagonalMode{domain.DiagonalNever, domain.DiagonalAlways, domain.DiagonalNoCutCorners}
	start, goal := domain.Pt(0, 0), domain.Pt(39, 29)

	for _, mode := range modes {
		for seed := uint64(1); seed <= 6; seed++ {
			g := scattered(t, seed, 40, 30, mode, 0.25, start, goal)
			if seed%2 == 0 {
				weighted(t, g, seed)
			}

			informed, err := search.Search[domain.Point](g, start, goal, domain.Diagonal{})
			require.NoError(t, err)
			uninformed, err := search.Search[domain.Point](g, start, goal, domain.Zero[domain.Point]{})
			require.NoError(t, err)

			require.Equal(t, uninformed.Found(), informed.Found(), "mode %v seed %d", mode, seed)
			if !informed.Found() {
				continue
			}
			assert.Equal(t, start, informed.Path[0])
			assert.Equal(t, goal, informed.Path[len(informed.Path)-1])
			assert.InDelta(t, requireContiguous(t, g, informed.Path), informed.Cost, 1e-9)
			assert.InDelta(t, uninformed.Cost, informed.Cost, 1e-9, "mode %v seed %d", mode, seed)
		}
	}
}

func TestSearch_StartIsGoal(t *testing.T) {
	g := newGrid(t, 3, 3, domain.DiagonalNever)

	res, err := search.Search[domain.Point](g, domain.Pt(1, 1), domain.Pt(1, 1), domain.Manhattan{})
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, []domain.Point{{X: 1, Y: 1}}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Zero(t, res.Expanded)
}

func TestSearch_NoPath(t *testing.T) {
	g := newGrid(t, 6, 6, domain.DiagonalAlways)
	g.SetRegionBlocked(domain.Rect{X: 3, Y: 0, Width: 1, Height: 6}, true)

	res, err := search.Search[domain.Point](g, domain.Pt(0, 0), domain.Pt(5, 5), domain.Diagonal{})
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, domain.StatusNotFound, res.Status)
	assert.Empty(t, res.Path)
	assert.Equal(t, 18, res.Expanded, "every reachable cell is expanded once")
	assert.True(t, errors.Is(res.Err(), domain.ErrNoPathFound))
	assert.False(t, errors.Is(res.Err(), domain.ErrExpansionLimitExceeded))
}

func TestSearch_InvalidNode(t *testing.T) {
	g := newGrid(t, 4, 4, domain.DiagonalNever)
	require.NoError(t, g.SetBlocked(2, 2, true))

	tests := []struct {
		name        string
		start, goal domain.Point
	}{
		{name: "blocked start", start: domain.Pt(2, 2), goal: domain.Pt(0, 0)},
		{name: "blocked goal", start: domain.Pt(0, 0), goal: domain.Pt(2, 2)},
		{name: "start out of bounds", start: domain.Pt(-1, 0), goal: domain.Pt(0, 0)},
		{name: "goal out of bounds", start: domain.Pt(0, 0), goal: domain.Pt(4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := search.Search[domain.Point](g, tt.start, tt.goal, domain.Manhattan{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidNode))
			assert.Zero(t, res.Expanded)
		})
	}
}

func TestSearch_MaxExpansions(t *testing.T) {
	g := newGrid(t, 50, 50, domain.DiagonalNever)

	res, err := search.Search[domain.Point](g, domain.Pt(0, 0), domain.Pt(49, 49), domain.Zero[domain.Point]{},
		search.WithMaxExpansions(25))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLimitExceeded, res.Status)
	assert.Equal(t, 25, res.Expanded)
	assert.Empty(t, res.Path)

	err = res.Err()
	assert.True(t, errors.Is(err, domain.ErrExpansionLimitExceeded))
	assert.True(t, errors.Is(err, domain.ErrNoPathFound))
}

func TestSearch_TieBreakingReducesExpansions(t *testing.T) {
	g := newGrid(t, 32, 32, domain.DiagonalNever)
	start, goal := domain.Pt(0, 0), domain.Pt(31, 31)

	plain, err := search.Search[domain.Point](g, start, goal, domain.Manhattan{})
	require.NoError(t, err)
	tied, err := search.Search[domain.Point](g, start, goal, domain.Manhattan{}, search.WithTieBreaking(true))
	require.NoError(t, err)

	assert.InDelta(t, plain.Cost, tied.Cost, 1e-9)
	assert.InDelta(t, 62.0, tied.Cost, 1e-9)
	assert.Less(t, tied.Expanded, plain.Expanded)
	assert.Equal(t, 62, tied.Expanded)
}

func TestSearch_HeuristicWeight(t *testing.T) {
	g := serpentine(t, domain.DiagonalAlways)
	start, goal := domain.Pt(0, 0), domain.Pt(63, 63)

	optimal, err := search.Search[domain.Point](g, start, goal, domain.Diagonal{})
	require.NoError(t, err)
	greedy, err := search.Search[domain.Point](g, start, goal, domain.Diagonal{}, search.WithHeuristicWeight(3))
	require.NoError(t, err)

	require.True(t, greedy.Found())
	assert.GreaterOrEqual(t, greedy.Cost, optimal.Cost-1e-9)
	assert.LessOrEqual(t, greedy.Cost, 3*optimal.Cost)
	assert.InDelta(t, requireContiguous(t, g, greedy.Path), greedy.Cost, 1e-9)
}

// roads is a directed weighted graph without dense indexing.
type roads map[string]map[string]float64

func (r roads) IsPassable(n string) bool {
	_, ok := r[n]
	return ok
}

func (r roads) Neighbors(n string, visit func(string, float64)) {
	// Fixed order keeps the test deterministic.
	for _, to := range []string{"a", "b", "c", "d", "e"} {
		if c, ok := r[n][to]; ok {
			visit(to, c)
		}
	}
}

func TestSearch_CustomGraph(t *testing.T) {
	g := roads{
		"a": {"b": 1, "c": 4},
		"b": {"c": 2, "d": 5},
		"c": {"d": 1},
		"d": {},
		"e": {"a": 1},
	}

	res, err := search.Search[string](g, "a", "d", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, res.Path)
	assert.InDelta(t, 4.0, res.Cost, 1e-12)

	res, err = search.Search[string](g, "d", "a", nil)
	require.NoError(t, err)
	assert.False(t, res.Found())

	_, err = search.Search[string](g, "a", "z", nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidNode))
}

func TestSearch_HeuristicFunc(t *testing.T) {
	g := newGrid(t, 10, 10, domain.DiagonalNever)
	calls := 0
	h := domain.HeuristicFunc[domain.Point](func(a, b domain.Point) float64 {
		calls++
		return domain.Manhattan{}.Estimate(a, b)
	})

	res, err := search.Search[domain.Point](g, domain.Pt(0, 0), domain.Pt(9, 0), h)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, res.Cost, 1e-12)
	assert.Positive(t, calls)
}
