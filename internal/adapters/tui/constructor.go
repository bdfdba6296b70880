// Package tui provides the interactive watch view: a budgeted search advanced
// a slice at a time, with the provisional route redrawn every frame.
package tui

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/grid"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/pathforge/internal/engine/search"
)

const (
	defaultFrameInterval = 50 * time.Millisecond
	defaultBudget        = 2 * time.Millisecond
)

// NewModel creates a watch model for one query on g.
func NewModel(
	g *grid.Grid,
	start, goal domain.Point,
	h ports.Heuristic[domain.Point],
	r ports.Renderer,
	opts ...search.Option,
) *Model {
	return &Model{
		Grid:          g,
		Start:         start,
		Goal:          goal,
		Heuristic:     h,
		Renderer:      r,
		Search:        search.NewBudgeted[domain.Point](opts...),
		Budget:        defaultBudget,
		FrameInterval: defaultFrameInterval,
	}
}

// WithBudget sets the search time spent per frame.
func (m *Model) WithBudget(d time.Duration) *Model {
	m.Budget = d
	return m
}

// WithFrameInterval sets the delay between frames.
func (m *Model) WithFrameInterval(d time.Duration) *Model {
	m.FrameInterval = d
	return m
}

// WithClock sets the clock the search measures its budget with.
func (m *Model) WithClock(c clockwork.Clock) *Model {
	m.Search.WithClock(c)
	return m
}

// WithCheckInterval sets how many expansions run between clock reads.
func (m *Model) WithCheckInterval(n int) *Model {
	m.Search.WithCheckInterval(n)
	return m
}

// WithDisableTick stops the model from scheduling frames itself.
// This is primarily used for testing, where frames are sent by hand.
func (m *Model) WithDisableTick() *Model {
	m.disableTick = true
	return m
}

// WithExitOnDone makes the program quit as soon as the search terminates.
func (m *Model) WithExitOnDone() *Model {
	m.exitOnDone = true
	return m
}
