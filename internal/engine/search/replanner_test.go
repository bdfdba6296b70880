package search_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/engine/search"
)

func TestReplanner(t *testing.T) {
	g := newGrid(t, 10, 10, domain.DiagonalNever)
	clock := clockwork.NewFakeClock()
	r := search.NewReplanner[domain.Point](time.Second).WithClock(clock)
	start, goal := domain.Pt(0, 0), domain.Pt(9, 0)

	replanned, err := r.Update(g, domain.Manhattan{}, start, goal)
	require.NoError(t, err)
	assert.True(t, replanned, "first update plans")
	first := r.Path()
	require.NotEmpty(t, first)
	assert.Equal(t, goal, first[len(first)-1])

	replanned, err = r.Update(g, domain.Manhattan{}, start, goal)
	require.NoError(t, err)
	assert.False(t, replanned, "nothing changed")

	next := first[1]
	require.NoError(t, g.SetBlocked(next.X, next.Y, true))

	replanned, err = r.Update(g, domain.Manhattan{}, start, goal)
	require.NoError(t, err)
	assert.False(t, replanned, "blockage is checked once per interval")

	clock.Advance(time.Second)
	replanned, err = r.Update(g, domain.Manhattan{}, start, goal)
	require.NoError(t, err)
	assert.True(t, replanned)
	assert.NotContains(t, r.Path(), next)

	replanned, err = r.Update(g, domain.Manhattan{}, start, domain.Pt(0, 9))
	require.NoError(t, err)
	assert.True(t, replanned, "goal moved")
	assert.Equal(t, domain.Pt(0, 9), r.Path()[len(r.Path())-1])
}

func TestReplanner_KeepsPathOnFailure(t *testing.T) {
	g := newGrid(t, 6, 6, domain.DiagonalNever)
	r := search.NewReplanner[domain.Point](0)

	_, err := r.Update(g, domain.Manhattan{}, domain.Pt(0, 0), domain.Pt(5, 0))
	require.NoError(t, err)
	kept := r.Path()

	g.SetRegionBlocked(domain.Rect{X: 3, Y: 0, Width: 1, Height: 6}, true)
	replanned, err := r.Update(g, domain.Manhattan{}, domain.Pt(0, 0), domain.Pt(5, 5))
	require.NoError(t, err)
	assert.False(t, replanned)
	assert.Equal(t, kept, r.Path())

	_, err = r.Update(g, domain.Manhattan{}, domain.Pt(3, 3), domain.Pt(5, 5))
	assert.True(t, errors.Is(err, domain.ErrInvalidNode))
}
