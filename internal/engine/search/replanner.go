package search

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/pathforge/internal/core/ports"
)

// Replanner keeps a path for a moving agent and searches again only when
// needed: the goal moved, there is no path yet, or the replan interval has
// elapsed and the agent's next step has become impassable.
type Replanner[N comparable] struct {
	interval time.Duration
	opts     []Option
	clock    clockwork.Clock

	path     []N
	goal     N
	hasGoal  bool
	lastPlan time.Time
}

// NewReplanner creates a replanner that checks for blockage at most once per interval.
func NewReplanner[N comparable](interval time.Duration, opts ...Option) *Replanner[N] {
	return &Replanner[N]{
		interval: interval,
		opts:     opts,
		clock:    clockwork.NewRealClock(),
	}
}

// WithClock sets the clock used for the replan interval.
func (r *Replanner[N]) WithClock(c clockwork.Clock) *Replanner[N] {
	r.clock = c
	return r
}

// Path returns the current path.
func (r *Replanner[N]) Path() []N {
	return r.path
}

// Update replans from current to goal if needed and reports whether it did.
// A failed replan keeps the previous path.
func (r *Replanner[N]) Update(g ports.Graph[N], h ports.Heuristic[N], current, goal N) (bool, error) {
	now := r.clock.Now()
	stale := !r.hasGoal || r.goal != goal || len(r.path) == 0
	due := r.lastPlan.IsZero() || now.Sub(r.lastPlan) >= r.interval
	if !stale && !(due && r.nextBlocked(g, current)) {
		return false, nil
	}

	res, err := Search(g, current, goal, h, r.opts...)
	if err != nil {
		return false, err
	}
	if !res.Found() {
		return false, nil
	}
	r.path = res.Path
	r.goal = goal
	r.hasGoal = true
	r.lastPlan = now
	return true, nil
}

func (r *Replanner[N]) nextBlocked(g ports.Graph[N], current N) bool {
	for i, n := range r.path {
		if n == current {
			return i+1 < len(r.path) && !g.IsPassable(r.path[i+1])
		}
	}
	return false
}
