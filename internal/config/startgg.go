package config

import "time"

// StartGGConfig controls how we talk to the start.gg API.
type StartGGConfig struct {
	BaseURL        string
	HTTPTimeout    time.Duration
	PacingInterval time.Duration
}

// RetryConfig controls the retrying executor.
type RetryConfig struct {
	Enabled     bool
	MaxAttempts int
	Backoff     time.Duration
	MaxBackoff  time.Duration
}

func loadStartGG() StartGGConfig {
	return StartGGConfig{
		BaseURL:        envOrDefault(envBaseURL, defaultBaseURL),
		HTTPTimeout:    durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		PacingInterval: durationEnvOrDefault(envPacingInterval, defaultPacingInterval),
	}
}

func loadRetry() RetryConfig {
	return RetryConfig{
		Enabled:     boolEnvOrDefault(envAutoRetry, defaultAutoRetry),
		MaxAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		Backoff:     durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		MaxBackoff:  durationEnvOrDefault(envRetryMaxBackoff, defaultRetryMaxBackoff),
	}
}
