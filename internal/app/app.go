// Package app implements the application layer for pathforge.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/pathforge/internal/engine/search"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader     ports.ScenarioLoader
	logger     ports.Logger
	tracer     ports.Tracer
	metrics    ports.Metrics
	renderer   ports.Renderer
	watcher    ports.ScenarioWatcher
	out        io.Writer
	teaOptions []tea.ProgramOption
	shutdown   func(context.Context) error
}

// New creates a new App instance writing renderings to stdout.
func New(
	loader ports.ScenarioLoader,
	log ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
	renderer ports.Renderer,
) *App {
	return &App{
		loader:   loader,
		logger:   log,
		tracer:   tracer,
		metrics:  metrics,
		renderer: renderer,
		out:      os.Stdout,
	}
}

// WithOutput sets where renderings and metric dumps are written.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithWatcher enables RunOptions.Watch.
func (a *App) WithWatcher(w ports.ScenarioWatcher) *App {
	a.watcher = w
	return a
}

// WithTeaOptions adds bubbletea program options used by Watch.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Overrides Overrides
	// Workers bounds how many queries are searched at once. Values below 2
	// search them one after another.
	Workers int
	NoCache bool
	Render  bool
	Metrics bool
	// Watch runs again whenever the scenario file changes, until ctx ends.
	Watch bool
}

// Run searches every query of the scenario at path and reports the results.
// It fails with domain.ErrNoPathFound if any query has no path.
//
// In watch mode the failures of each pass are logged instead, and Run returns
// nil once ctx ends.
func (a *App) Run(ctx context.Context, path string, opts RunOptions) error {
	if !opts.Watch {
		_, err := a.runOnce(ctx, path, opts, nil)
		return err
	}
	if a.watcher == nil {
		return zerr.Wrap(domain.ErrWatchUnavailable, "cannot watch scenario")
	}

	changes, err := a.watcher.Changes(ctx, path)
	if err != nil {
		return zerr.Wrap(err, "failed to watch scenario")
	}

	p, err := a.runOnce(ctx, path, opts, nil)
	a.logPass(err)
	a.logger.Info(fmt.Sprintf("watching %s for changes", path))
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			p, err = a.runOnce(ctx, path, opts, p)
			a.logPass(err)
		}
	}
}

func (a *App) logPass(err error) {
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, domain.ErrNoPathFound):
		a.logger.Warn(err.Error())
	default:
		a.logger.Error(err)
	}
}

// runOnce runs every query of the scenario once. A non-nil prev is the
// planner of the previous pass; its cache carries over when the world allows
// it. The returned planner is the one the next pass should build on.
func (a *App) runOnce(ctx context.Context, path string, opts RunOptions, prev *planner) (*planner, error) {
	sc, err := a.load(path)
	if err != nil {
		return prev, err
	}
	if len(sc.Queries) == 0 {
		return prev, zerr.With(zerr.Wrap(domain.ErrNoQueries, "nothing to search"), "scenario", sc.Name)
	}

	ctx, span := a.tracer.Start(ctx, "run",
		ports.WithAttribute("scenario", sc.Name),
		ports.WithAttribute("queries", len(sc.Queries)),
	)
	defer span.End()

	p, err := newPlanner(sc, opts.Overrides, opts.NoCache)
	if err != nil {
		span.RecordError(err)
		return prev, err
	}
	p.adopt(prev)
	before := p.cacheStats()

	names := make([]string, len(sc.Queries))
	queries := make([]search.Query[domain.Point], len(sc.Queries))
	for i, q := range sc.Queries {
		names[i] = q.Name
		queries[i] = search.Query[domain.Point]{Start: q.From, Goal: q.To}
	}
	a.tracer.EmitQueries(ctx, names)

	results, err := search.BatchFunc(ctx, queries, max(opts.Workers, 1),
		func(ctx context.Context, i int, _ search.Query[domain.Point]) (domain.PathResult[domain.Point], error) {
			r, err := a.query(ctx, p, sc.Queries[i])
			if err != nil {
				return r, zerr.With(err, "query", sc.Queries[i].Name)
			}
			return r, nil
		})
	if err != nil {
		span.RecordError(err)
		return p, err
	}

	var failed int
	for i, q := range sc.Queries {
		r := results[i]
		a.report(q, r)
		if !r.Found() {
			failed++
		}
		if opts.Render && r.Found() {
			if err := a.renderer.RenderPath(a.out, p.grid, r.Path); err != nil {
				return p, err
			}
		}
	}

	a.metrics.ObserveCache(p.cacheStats().Sub(before))
	if opts.Metrics {
		if err := a.metrics.Write(a.out); err != nil {
			return p, err
		}
	}

	if failed > 0 {
		err := zerr.Wrap(domain.ErrNoPathFound, "some queries have no path")
		err = zerr.With(err, "failed", failed)
		span.RecordError(err)
		return p, zerr.With(err, "total", len(sc.Queries))
	}
	a.logger.Info(fmt.Sprintf("%d queries solved", len(sc.Queries)))
	return p, nil
}

// SearchOptions configuration for the Search method.
type SearchOptions struct {
	From      domain.Point
	To        domain.Point
	Overrides Overrides
	// Quiet skips rendering the grid.
	Quiet bool
}

// Search runs a single query on the scenario world at path and draws the path.
func (a *App) Search(ctx context.Context, path string, opts SearchOptions) error {
	sc, err := a.load(path)
	if err != nil {
		return err
	}
	p, err := newPlanner(sc, opts.Overrides, true)
	if err != nil {
		return err
	}

	q := domain.Query{Name: "search", From: opts.From, To: opts.To}
	r, err := a.query(ctx, p, q)
	if err != nil {
		return err
	}
	a.report(q, r)

	if !r.Found() {
		err := zerr.Wrap(r.Err(), "search failed")
		err = zerr.With(err, "from", q.From.String())
		return zerr.With(err, "to", q.To.String())
	}
	if opts.Quiet {
		return nil
	}
	return a.renderer.RenderPath(a.out, p.grid, r.Path)
}

// query runs q inside its own span and records search metrics.
func (a *App) query(ctx context.Context, p *planner, q domain.Query) (domain.PathResult[domain.Point], error) {
	if err := ctx.Err(); err != nil {
		return domain.PathResult[domain.Point]{}, err
	}

	_, span := a.tracer.Start(ctx, "query",
		ports.WithAttribute("query", q.Name),
		ports.WithAttribute("algorithm", p.settings.Algorithm),
		ports.WithAttribute("from", q.From),
		ports.WithAttribute("to", q.To),
	)
	defer span.End()

	began := time.Now()
	r, err := p.plan(q.From, q.To)
	if err != nil {
		span.RecordError(err)
		return r, err
	}
	a.metrics.ObserveSearch(p.settings.Algorithm, r.Status, r.Expanded, time.Since(began))

	span.SetAttribute("status", r.Status)
	span.SetAttribute("expanded", r.Expanded)
	if r.Found() {
		span.SetAttribute("cost", r.Cost)
	}
	return r, nil
}

func (a *App) report(q domain.Query, r domain.PathResult[domain.Point]) {
	if r.Found() {
		a.logger.Info(fmt.Sprintf("%s: %s → %s cost %.2f, %d waypoints, %d expanded",
			q.Name, q.From, q.To, r.Cost, len(r.Path), r.Expanded))
		return
	}
	a.logger.Warn(fmt.Sprintf("%s: no path from %s to %s (%s after %d expanded)",
		q.Name, q.From, q.To, r.Status, r.Expanded))
}

func (a *App) load(path string) (*domain.Scenario, error) {
	sc, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load scenario")
	}
	return sc, nil
}
