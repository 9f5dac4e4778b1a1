package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"startgg-results/internal/logging"
)

// Pacer spaces out successive upstream calls.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NoopPacer never waits.
type NoopPacer struct{}

func (NoopPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}

// intervalPacer enforces a minimum interval between calls. The first call
// passes immediately.
type intervalPacer struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewIntervalPacer returns a Pacer enforcing interval between calls.
// A non-positive interval disables pacing.
func NewIntervalPacer(interval time.Duration) Pacer {
	if interval <= 0 {
		return NoopPacer{}
	}
	return &intervalPacer{interval: interval, now: time.Now}
}

func (p *intervalPacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() {
		if wait := p.interval - p.now().Sub(p.last); wait > 0 {
			if err := sleepContext(ctx, wait); err != nil {
				return err
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.last = p.now()
	return nil
}

// pacedExecutor waits on a Pacer before every call to the wrapped executor.
type pacedExecutor struct {
	next   Executor
	pacer  Pacer
	logger *slog.Logger
}

// NewPacedExecutor returns an Executor that paces calls to next.
func NewPacedExecutor(next Executor, pacer Pacer, logger *slog.Logger) Executor {
	if pacer == nil {
		pacer = NoopPacer{}
	}
	return &pacedExecutor{next: next, pacer: pacer, logger: logger}
}

func (p *pacedExecutor) Execute(ctx context.Context, req Request) (*Response, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logWithQuery(ctx, p.logger, slog.LevelWarn, req.Name(), "executor unavailable")
		}
		return nil, ErrProviderUnavailable
	}
	if err := p.pacer.Wait(ctx); err != nil {
		logWithQuery(ctx, p.logger, slog.LevelWarn, req.Name(), "paced execute canceled")
		return nil, err
	}
	logWithQuery(ctx, p.logger, slog.LevelDebug, req.Name(), "paced execute", slog.String(logging.FieldProvider, "paced"))
	return p.next.Execute(ctx, req)
}
