package server

import (
	"log/slog"

	"startgg-results/internal/config"
	"startgg-results/internal/logging"
	"startgg-results/internal/providers"
	"startgg-results/internal/providers/fixture"
	"startgg-results/internal/providers/startgg"
)

func selectExecutor(cfg config.Config, logger *slog.Logger) (providers.Executor, error) {
	switch cfg.Provider {
	case config.ProviderStartGG, "":
		cred, err := startgg.NewCredential(cfg.APIKey)
		if err != nil {
			return nil, err
		}
		return startgg.NewClient(startgg.Config{
			BaseURL:    cfg.StartGG.BaseURL,
			Credential: cred,
			Timeout:    cfg.StartGG.HTTPTimeout,
		}), nil
	case config.ProviderFixture:
		return fixture.New(), nil
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.FieldProvider, cfg.Provider)
		return fixture.New(), nil
	}
}
