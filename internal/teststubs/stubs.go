package teststubs

import (
	"context"
	"sync/atomic"

	"startgg-results/internal/domain"
	"startgg-results/internal/export"
	"startgg-results/internal/providers"
)

// StubExecutor is a test double for providers.Executor.
type StubExecutor struct {
	Response *providers.Response
	Err      error
	Calls    atomic.Int32
	Notify   chan struct{}
}

// Execute returns the configured response and error while tracking calls.
func (s *StubExecutor) Execute(ctx context.Context, req providers.Request) (*providers.Response, error) {
	_ = ctx
	_ = req
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Response, s.Err
}

// StubExporter is a test double for the CLI results exporter.
type StubExporter struct {
	Written []domain.EventResults
	Targets export.Targets
	Calls   int
	Err     error
}

// Export records the results for verification in tests.
func (e *StubExporter) Export(results []domain.EventResults, targets export.Targets) error {
	e.Calls++
	if e.Err != nil {
		return e.Err
	}
	e.Written = results
	e.Targets = targets
	return nil
}
