package testutil

import (
	"bytes"
	"context"
	"sync/atomic"

	"startgg-results/internal/app"
	"startgg-results/internal/metrics"
	"startgg-results/internal/providers"
)

// NewDeps returns service dependencies around exec with a buffered logger,
// a fresh recorder and retries disabled.
func NewDeps(exec providers.Executor) (app.Deps, *bytes.Buffer) {
	logger, buf := NewBufferLogger()
	return app.Deps{
		Executor: exec,
		Logger:   logger,
		Metrics:  metrics.NewRecorder(),
		Retry:    false,
	}, buf
}

// CountingPacer counts Wait calls without delaying.
type CountingPacer struct {
	Calls atomic.Int32
}

func (p *CountingPacer) Wait(ctx context.Context) error {
	p.Calls.Add(1)
	return ctx.Err()
}
