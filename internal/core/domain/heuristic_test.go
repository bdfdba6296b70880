package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pathforge/internal/core/domain"
)

func TestHeuristics(t *testing.T) {
	a, b := domain.Pt(0, 0), domain.Pt(3, 4)

	assert.InDelta(t, 7.0, domain.Manhattan{}.Estimate(a, b), 1e-12)
	assert.InDelta(t, 5.0, domain.Euclidean{}.Estimate(a, b), 1e-12)
	assert.InDelta(t, 1+3*math.Sqrt2, domain.Diagonal{}.Estimate(a, b), 1e-12)
	assert.InDelta(t, 1+3*1.5, domain.Diagonal{Cardinal: 1, Diag: 1.5}.Estimate(b, a), 1e-12)
	assert.Zero(t, domain.Zero[domain.Point]{}.Estimate(a, b))

	f := domain.HeuristicFunc[int](func(from, to int) float64 { return float64(to - from) })
	assert.InDelta(t, 4.0, f.Estimate(1, 5), 1e-12)
}

func TestParseHeuristic(t *testing.T) {
	tests := map[string]domain.PointHeuristic{
		"":          domain.Diagonal{},
		"octile":    domain.Diagonal{},
		"Manhattan": domain.Manhattan{},
		"euclidean": domain.Euclidean{},
		"dijkstra":  domain.Zero[domain.Point]{},
	}
	for in, want := range tests {
		got, err := domain.ParseHeuristic(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseHeuristic("chebyshev")
	assert.ErrorIs(t, err, domain.ErrUnknownHeuristic)
}
