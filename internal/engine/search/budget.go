package search

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// BudgetState is the lifecycle state of a Budgeted search.
type BudgetState int

const (
	// BudgetIdle means no search has been started or the last result was taken.
	BudgetIdle BudgetState = iota
	// BudgetSearching means Step has more work to do.
	BudgetSearching
	// BudgetSucceeded means the goal was reached.
	BudgetSucceeded
	// BudgetFailed means the search ended without a path.
	BudgetFailed
)

// String returns the lowercase name of the state.
func (s BudgetState) String() string {
	switch s {
	case BudgetIdle:
		return "idle"
	case BudgetSearching:
		return "searching"
	case BudgetSucceeded:
		return "succeeded"
	case BudgetFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DefaultCheckInterval is how many expansions run between clock reads.
const DefaultCheckInterval = 10

// Budgeted is an A* search that runs in time-boxed slices.
//
// Call Start once, then Step once per frame until it returns true, then
// TakeResult. Node storage is kept between searches. A Budgeted is not safe
// for concurrent use.
type Budgeted[N comparable] struct {
	engine    *engine[N]
	state     BudgetState
	clock     clockwork.Clock
	interval  int
	start     N
	goal      N
	heuristic ports.Heuristic[N]
	pending   bool
	err       error
}

// NewBudgeted creates an idle budgeted search.
func NewBudgeted[N comparable](opts ...Option) *Budgeted[N] {
	return &Budgeted[N]{
		engine:   newEngine[N](NewConfig(opts...)),
		clock:    clockwork.NewRealClock(),
		interval: DefaultCheckInterval,
	}
}

// WithClock sets the clock used to measure step budgets.
func (b *Budgeted[N]) WithClock(c clockwork.Clock) *Budgeted[N] {
	b.clock = c
	return b
}

// WithCheckInterval sets how many expansions run between clock reads.
func (b *Budgeted[N]) WithCheckInterval(n int) *Budgeted[N] {
	b.interval = max(n, 1)
	return b
}

// State returns the current lifecycle state.
func (b *Budgeted[N]) State() BudgetState {
	return b.state
}

// Expanded returns the number of nodes expanded by the current search.
func (b *Budgeted[N]) Expanded() int {
	return b.engine.expanded
}

// Start begins a new search, discarding any search in progress.
// The world is bound on the first Step.
func (b *Budgeted[N]) Start(start, goal N, h ports.Heuristic[N]) {
	b.start, b.goal = start, goal
	b.heuristic = h
	b.state = BudgetSearching
	b.pending = true
	b.err = nil
	b.engine.started = false
}

// Step expands nodes until the search terminates or budget has elapsed and
// reports whether the search is terminal. At least one batch of expansions
// runs per call. Calls outside the Searching state do nothing and return true.
func (b *Budgeted[N]) Step(g ports.Graph[N], h ports.Heuristic[N], budget time.Duration) bool {
	if b.state != BudgetSearching {
		return true
	}
	if h == nil {
		h = b.heuristic
	}
	if b.pending {
		if err := validateEndpoints(g, b.start, b.goal); err != nil {
			b.err = err
			b.state = BudgetFailed
			return true
		}
		b.engine.bind(g, h)
		b.engine.reset(b.start, b.goal)
		b.pending = false
	} else {
		b.engine.graph = g
		b.engine.heuristic = orZero(h)
	}

	deadline := b.clock.Now().Add(budget)
	for i := 1; ; i++ {
		if b.engine.advance() {
			if b.engine.status == domain.StatusFound {
				b.state = BudgetSucceeded
			} else {
				b.state = BudgetFailed
			}
			return true
		}
		if i%b.interval == 0 && !b.clock.Now().Before(deadline) {
			return false
		}
	}
}

// PartialResult returns the route from start to the reached node with the
// smallest heuristic estimate to the goal. This is not the lowest-f frontier
// node: that node can sit behind the start, while the smallest-h node always
// makes progress toward the goal. Its Estimate never grows between calls
// within one search. It reports false before the first Step.
func (b *Budgeted[N]) PartialResult() (domain.PathResult[N], bool) {
	if b.state == BudgetIdle || b.pending {
		return domain.PathResult[N]{}, false
	}
	return b.engine.partial()
}

// TakeResult returns the final result and resets the driver to Idle.
// It fails with domain.ErrBudgetMisuse unless the search has terminated.
func (b *Budgeted[N]) TakeResult() (domain.PathResult[N], error) {
	if b.state != BudgetSucceeded && b.state != BudgetFailed {
		err := zerr.Wrap(domain.ErrBudgetMisuse, "result taken before the search terminated")
		return domain.PathResult[N]{}, zerr.With(err, "state", b.state.String())
	}
	b.state = BudgetIdle
	b.engine.started = false
	if b.err != nil {
		err := b.err
		b.err = nil
		return domain.PathResult[N]{}, err
	}
	return b.engine.result(), nil
}
