package search

import (
	"context"

	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Query is a start/goal pair for Batch.
type Query[N comparable] struct {
	Start N
	Goal  N
}

// Solver answers query i of a batch.
type Solver[N comparable] func(ctx context.Context, i int, q Query[N]) (domain.PathResult[N], error)

// Batch runs independent A* searches concurrently over a read-only world.
// Results are returned in query order. workers <= 0 means no limit.
// The first invalid query cancels the remaining ones.
func Batch[N comparable](
	ctx context.Context,
	g ports.Graph[N],
	h ports.Heuristic[N],
	queries []Query[N],
	workers int,
	opts ...Option,
) ([]domain.PathResult[N], error) {
	return BatchFunc(ctx, queries, workers, func(_ context.Context, i int, q Query[N]) (domain.PathResult[N], error) {
		res, err := Search(g, q.Start, q.Goal, h, opts...)
		if err != nil {
			return res, zerr.With(err, "query", i)
		}
		return res, nil
	})
}

// BatchFunc runs solve for every query with at most workers in flight and
// returns the results in query order. workers <= 0 means no limit. The first
// error cancels the context passed to the remaining calls and is returned.
func BatchFunc[N comparable](
	ctx context.Context,
	queries []Query[N],
	workers int,
	solve Solver[N],
) ([]domain.PathResult[N], error) {
	results := make([]domain.PathResult[N], len(queries))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, q := range queries {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := solve(ctx, i, q)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
