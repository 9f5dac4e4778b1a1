// Package app holds the plumbing shared by the domain services: running an
// operation, reporting what its normalizer dropped and walking pages.
package app

import (
	"context"
	"log/slog"
	"maps"

	"startgg-results/internal/logging"
	"startgg-results/internal/metrics"
	"startgg-results/internal/providers"
	"startgg-results/internal/providers/startgg"
	"startgg-results/internal/query"
)

// Deps are the collaborators every service is constructed with.
type Deps struct {
	Executor providers.Executor
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	Retry    bool
}

// Call runs op and returns its normalized value. Dropped items and
// co-occurring upstream errors are logged at warn.
func Call[T any](ctx context.Context, d Deps, op startgg.Operation[T], vars query.Variables) (T, bool, error) {
	res, err := run(ctx, d, op, vars)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return res.Value, res.Found, nil
}

func run[T any](ctx context.Context, d Deps, op startgg.Operation[T], vars query.Variables) (startgg.Result[T], error) {
	res, err := op.Run(ctx, d.Executor, vars, d.Retry)
	if err != nil {
		return res, err
	}
	name := string(op.Contract.Name)
	if n := len(res.Skipped); n > 0 {
		d.Metrics.RecordSkipped(name, n)
		for _, s := range res.Skipped {
			logging.Warn(d.Logger, "dropped malformed item",
				logging.FieldQuery, name,
				logging.FieldIndex, s.Index,
				logging.FieldField, s.Field,
				logging.FieldReason, s.Reason,
			)
		}
	}
	for _, e := range res.Errors {
		logging.Warn(d.Logger, "upstream reported error alongside data",
			logging.FieldQuery, name,
			"message", e.Message,
		)
	}
	return res, nil
}

// Pages requests increasing pages of op starting at page one until a page
// comes back empty or absent, or maxPages pages were read (0 means no limit).
// A page is empty when it carried no nodes at all; one whose nodes were all
// skipped keeps the walk going. found is false only when the first page
// reports the entity missing. Pacing between pages is left to the executor.
func Pages[T any](ctx context.Context, d Deps, op startgg.Operation[[]T], vars query.Variables, maxPages int) ([]T, bool, error) {
	var all []T
	page := query.PageOf(op.Contract.Name, query.FirstPage)
	for {
		pageVars := maps.Clone(vars)
		if pageVars == nil {
			pageVars = query.Variables{}
		}
		pageVars["page"] = page.Number

		res, err := run(ctx, d, op, pageVars)
		if err != nil {
			return nil, false, err
		}
		if !res.Found {
			if page.Number == query.FirstPage {
				return nil, false, nil
			}
			break
		}
		if page.Done(max(res.Raw, len(res.Value))) {
			break
		}
		all = append(all, res.Value...)
		if maxPages > 0 && page.Number >= maxPages {
			break
		}
		page = page.Next()
	}
	if all == nil {
		all = []T{}
	}
	return all, true, nil
}
