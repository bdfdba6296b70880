package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/pathforge/internal/adapters/tui"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Query selects a scenario query by name; empty selects the first one.
	Query string
	// From and To, when both set, replace the scenario query.
	From *domain.Point
	To   *domain.Point

	Overrides     Overrides
	Budget        time.Duration
	FrameInterval time.Duration
	ExitOnDone    bool
}

// Watch runs a budgeted search in the terminal, redrawing the provisional
// route every frame.
func (a *App) Watch(ctx context.Context, path string, opts WatchOptions) error {
	sc, err := a.load(path)
	if err != nil {
		return err
	}
	q, err := pickQuery(sc, opts)
	if err != nil {
		return err
	}
	p, err := newPlanner(sc, opts.Overrides, true)
	if err != nil {
		return err
	}

	model := tui.NewModel(p.grid, q.From, q.To, p.heuristic, a.renderer, p.opts...)
	if opts.Budget > 0 {
		model.WithBudget(opts.Budget)
	}
	if opts.FrameInterval > 0 {
		model.WithFrameInterval(opts.FrameInterval)
	}
	if opts.ExitOnDone {
		model.WithExitOnDone()
	}

	programOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	final, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		return zerr.Wrap(err, "watch view failed")
	}

	m, ok := final.(*tui.Model)
	if !ok || !m.Done {
		return nil
	}
	if m.Err != nil {
		return m.Err
	}
	a.report(q, m.Route)
	if !m.Route.Found() {
		return zerr.With(zerr.Wrap(m.Route.Err(), "search failed"), "query", q.Name)
	}
	a.logger.Info(fmt.Sprintf("%s solved in %d frames", q.Name, m.Frames))
	return nil
}

func pickQuery(sc *domain.Scenario, opts WatchOptions) (domain.Query, error) {
	if opts.From != nil && opts.To != nil {
		return domain.Query{Name: "watch", From: *opts.From, To: *opts.To}, nil
	}
	for _, q := range sc.Queries {
		if opts.Query == "" || q.Name == opts.Query {
			return q, nil
		}
	}
	if opts.Query != "" {
		return domain.Query{}, zerr.With(zerr.Wrap(domain.ErrInvalidScenario, "query not found"), "query", opts.Query)
	}
	return domain.Query{}, zerr.With(zerr.Wrap(domain.ErrNoQueries, "nothing to watch"), "scenario", sc.Name)
}
