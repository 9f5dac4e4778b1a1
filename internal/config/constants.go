package config

import "time"

const (
	envAPIKey          = "KEY"
	envProvider        = "STARTGG_PROVIDER"
	envBaseURL         = "STARTGG_BASE_URL"
	envHTTPTimeout     = "STARTGG_HTTP_TIMEOUT"
	envAutoRetry       = "STARTGG_AUTO_RETRY"
	envRetryAttempts   = "STARTGG_RETRY_ATTEMPTS"
	envRetryBackoff    = "STARTGG_RETRY_BACKOFF"
	envRetryMaxBackoff = "STARTGG_RETRY_MAX_BACKOFF"
	envPacingInterval  = "STARTGG_PACING_INTERVAL"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	// ProviderStartGG talks to the live API; ProviderFixture serves canned responses.
	ProviderStartGG = "startgg"
	ProviderFixture = "fixture"

	defaultProvider        = ProviderStartGG
	defaultBaseURL         = "https://api.start.gg/gql/alpha"
	defaultHTTPTimeout     = 10 * time.Second
	defaultAutoRetry       = true
	defaultRetryAttempts   = 3
	defaultRetryBackoff    = 500 * time.Millisecond
	defaultRetryMaxBackoff = 10 * time.Second
	// start.gg allows roughly 80 requests per minute per token.
	defaultPacingInterval = 750 * time.Millisecond
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
	defaultMetricsPort    = "9090"
	defaultServiceName    = "startgg-results"
)
