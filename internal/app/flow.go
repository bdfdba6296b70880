package app

import (
	"context"
	"fmt"

	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/grid"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/pathforge/internal/engine/flowfield"
	"go.trai.ch/zerr"
)

// FlowOptions configuration for the Flow method.
type FlowOptions struct {
	// Target overrides the scenario's flow target.
	Target *domain.Point
	// Workers overrides the scenario's worker count when positive.
	Workers int
	// From, when set, logs the route an agent at that cell would follow.
	From *domain.Point
}

// Flow computes the direction field toward a target on the scenario world at
// path and draws it.
func (a *App) Flow(ctx context.Context, path string, opts FlowOptions) error {
	sc, err := a.load(path)
	if err != nil {
		return err
	}

	target := sc.Flow.Target
	if opts.Target != nil {
		target = opts.Target
	}
	if target == nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidScenario, "no flow target given"), "scenario", sc.Name)
	}
	workers := sc.Flow.Workers
	if opts.Workers > 0 {
		workers = opts.Workers
	}

	g, err := grid.FromSpec(sc.Grid)
	if err != nil {
		return zerr.Wrap(err, "failed to build grid")
	}

	_, span := a.tracer.Start(ctx, "flow",
		ports.WithAttribute("target", *target),
		ports.WithAttribute("workers", workers),
	)
	defer span.End()

	field, err := flowfield.Compute(g, *target, flowfield.WithWorkers(workers))
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := a.renderer.RenderField(a.out, g, *target, field); err != nil {
		return err
	}

	if opts.From == nil {
		return nil
	}
	route := field.Trace(*opts.From)
	if route == nil {
		a.logger.Warn(fmt.Sprintf("%s cannot reach %s", *opts.From, *target))
		return zerr.With(zerr.Wrap(domain.ErrNoPathFound, "agent cannot reach the target"), "from", opts.From.String())
	}
	a.logger.Info(fmt.Sprintf("%s → %s cost %.2f, %d steps",
		*opts.From, *target, field.Distance(*opts.From), len(route)-1))
	return nil
}
