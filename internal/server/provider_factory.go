package server

import (
	"log/slog"

	"startgg-results/internal/config"
	"startgg-results/internal/logging"
	"startgg-results/internal/metrics"
	"startgg-results/internal/providers"
)

// executorFactory assembles the executor chain: transport, then retry, then
// pacing, so every logical request waits its turn once and its retries use
// their own backoff.
type executorFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newExecutorFactory(logger *slog.Logger, metrics *metrics.Recorder) executorFactory {
	return executorFactory{logger: logger, metrics: metrics}
}

func (f executorFactory) build(cfg config.Config) (providers.Executor, error) {
	base, err := selectExecutor(cfg, f.logger)
	if err != nil {
		return nil, err
	}
	logging.Debug(f.logger, "executor selected", logging.FieldProvider, normalizeProviderName(cfg.Provider, base))
	exec := providers.NewRetryingExecutor(base, f.logger, f.metrics, providers.RetryConfig{
		MaxAttempts: cfg.Retry.MaxAttempts,
		Backoff:     cfg.Retry.Backoff,
		MaxBackoff:  cfg.Retry.MaxBackoff,
	})
	pacer := buildPacer(cfg)
	if _, ok := pacer.(providers.NoopPacer); ok {
		return exec, nil
	}
	return providers.NewPacedExecutor(exec, pacer, f.logger), nil
}

func buildPacer(cfg config.Config) providers.Pacer {
	if cfg.Provider == config.ProviderFixture || cfg.StartGG.PacingInterval <= 0 {
		return providers.NoopPacer{}
	}
	return providers.NewIntervalPacer(cfg.StartGG.PacingInterval)
}
