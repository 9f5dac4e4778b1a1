// Package server assembles the runtime shared by every CLI command: the
// executor chain, the metrics recorder and the optional Prometheus endpoint.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"startgg-results/internal/app"
	"startgg-results/internal/config"
	"startgg-results/internal/logging"
	"startgg-results/internal/metrics"
	"startgg-results/internal/providers"
)

var metricsSetup = metrics.Setup

// Server owns the long-lived collaborators of one CLI invocation.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	executor      providers.Executor
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New builds the executor chain for cfg. It fails when the start.gg
// provider is selected without an API key.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsStop := buildMetrics(cfg, logger)
	exec, err := newExecutorFactory(logger, recorder).build(cfg)
	if err != nil {
		if metricsStop != nil {
			_ = metricsStop(context.Background())
		}
		return nil, err
	}
	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		executor:      exec,
		metricsServer: metricsSrv,
		metricsStop:   metricsStop,
	}, nil
}

// Deps returns the service dependencies for this runtime.
func (s *Server) Deps() app.Deps {
	return app.Deps{
		Executor: s.executor,
		Logger:   s.logger,
		Metrics:  s.metrics,
		Retry:    s.cfg.Retry.Enabled,
	}
}

// Metrics returns the recorder shared by the executor chain.
func (s *Server) Metrics() *metrics.Recorder {
	return s.metrics
}

// Start launches the metrics endpoint when enabled.
func (s *Server) Start() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger)
}

// Shutdown stops the metrics endpoint and flushes exporters.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
			errs = append(errs, err)
		}
	}
	if s.metricsStop != nil {
		if err := s.metricsStop(ctx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           mux,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}
	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
		}
	}()
}
