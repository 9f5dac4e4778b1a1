package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"startgg-results/internal/logging"
	"startgg-results/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 500 * time.Millisecond
	defaultMaxBackoff    = 10 * time.Second
)

// RetryConfig bounds the retry loop. Zero values fall back to defaults.
type RetryConfig struct {
	MaxAttempts int
	Backoff     time.Duration
	MaxBackoff  time.Duration
	// Jitter is the backoff randomization factor. Zero keeps delays deterministic.
	Jitter float64
}

type sleepFunc func(ctx context.Context, d time.Duration) error

// RetryOption customizes a retrying executor.
type RetryOption func(*retryingExecutor)

// WithSleep replaces the wait between attempts.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) RetryOption {
	return func(r *retryingExecutor) {
		if fn != nil {
			r.sleep = fn
		}
	}
}

// WithBackoff replaces the delay schedule. The factory is called once per Execute.
func WithBackoff(fn func() backoff.BackOff) RetryOption {
	return func(r *retryingExecutor) {
		if fn != nil {
			r.newBackoff = fn
		}
	}
}

// retryingExecutor wraps an Executor with bounded retry of transient failures.
type retryingExecutor struct {
	inner       Executor
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxAttempts int
	maxBackoff  time.Duration
	newBackoff  func() backoff.BackOff
	sleep       sleepFunc
	newID       func() string
}

// NewRetryingExecutor wraps inner with retries. Retries only happen for
// requests that set Retry; protocol errors are returned on the first attempt.
func NewRetryingExecutor(inner Executor, logger *slog.Logger, recorder *metrics.Recorder, cfg RetryConfig, opts ...RetryOption) Executor {
	cfg = resolveRetryConfig(cfg)
	r := &retryingExecutor{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		maxAttempts: cfg.MaxAttempts,
		maxBackoff:  cfg.MaxBackoff,
		newBackoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = cfg.Backoff
			b.MaxInterval = cfg.MaxBackoff
			b.Multiplier = 2
			b.RandomizationFactor = cfg.Jitter
			b.MaxElapsedTime = 0
			b.Reset()
			return b
		},
		sleep: sleepContext,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func resolveRetryConfig(cfg RetryConfig) RetryConfig {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultRetryAttempts
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = defaultMaxBackoff
	}
	if cfg.MaxBackoff < cfg.Backoff {
		cfg.MaxBackoff = cfg.Backoff
	}
	if cfg.Jitter < 0 || cfg.Jitter >= 1 {
		cfg.Jitter = 0
	}
	return cfg
}

func (r *retryingExecutor) Execute(ctx context.Context, req Request) (*Response, error) {
	if r == nil || r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	name := req.Name()
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger = logger.With(
			slog.String(logging.FieldRequestID, r.newID()),
			slog.String(logging.FieldQuery, name),
		)
	}

	maxAttempts := 1
	if req.Retry {
		maxAttempts = r.maxAttempts
	}
	schedule := r.newBackoff()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		resp, err := r.inner.Execute(ctx, req)
		elapsed := time.Since(start)
		r.metrics.RecordAttempt(name, elapsed, err)

		if err == nil {
			resp.Attempts = attempt
			if resp.Partial() {
				logging.Warn(logger, "query returned partial data",
					slog.Int(logging.FieldAttempt, attempt),
					slog.Int(logging.FieldCount, len(resp.Errors)),
				)
			}
			logging.Debug(logger, "query executed",
				slog.Int(logging.FieldAttempt, attempt),
				slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			)
			return resp, nil
		}
		lastErr = err

		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(name, rlErr.RetryAfter)
		}
		if _, ok := AsProtocolError(err); ok {
			r.metrics.RecordProtocolError(name)
			logging.Warn(logger, "query rejected", slog.Int(logging.FieldAttempt, attempt), "err", err)
			return nil, err
		}
		if !IsRetryable(err) || ctx.Err() != nil {
			return nil, err
		}
		if !req.Retry {
			return nil, err
		}
		if attempt == maxAttempts {
			break
		}

		delay := r.computeDelay(err, schedule)
		logging.Warn(logger, "query retry",
			slog.Int(logging.FieldAttempt, attempt),
			slog.Int(logging.FieldAttempts, maxAttempts),
			slog.Int64(logging.FieldDelayMS, delay.Milliseconds()),
			"err", err,
		)
		if err := r.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}

	logging.Warn(logger, "query failed", slog.Int(logging.FieldAttempts, maxAttempts), "err", lastErr)
	return nil, &ExhaustedError{Query: name, Attempts: maxAttempts, Last: lastErr}
}

// computeDelay advances the schedule and lets a Retry-After hint override it.
// Both are capped at the configured maximum.
func (r *retryingExecutor) computeDelay(err error, schedule backoff.BackOff) time.Duration {
	delay := schedule.NextBackOff()
	if delay == backoff.Stop || delay < 0 {
		delay = r.maxBackoff
	}
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		delay = rlErr.RetryAfter
	}
	if r.maxBackoff > 0 && delay > r.maxBackoff {
		delay = r.maxBackoff
	}
	return delay
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
