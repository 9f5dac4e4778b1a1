package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"startgg-results/internal/app/tournaments"
	"startgg-results/internal/config"
	"startgg-results/internal/metrics"
	"startgg-results/internal/providers/fixture"
	"startgg-results/internal/providers/startgg"
	"startgg-results/internal/testutil"
)

func fixtureConfig() config.Config {
	return config.Config{
		Provider: config.ProviderFixture,
		Retry:    config.RetryConfig{Enabled: true, MaxAttempts: 2},
	}
}

func TestNewWithFixtureProviderBuildsDeps(t *testing.T) {
	srv, err := New(fixtureConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	deps := srv.Deps()
	if deps.Executor == nil || deps.Metrics == nil {
		t.Fatalf("expected executor and recorder, got %+v", deps)
	}
	if !deps.Retry {
		t.Fatalf("expected retry flag from config")
	}
	tournament, found, err := tournaments.NewService(deps).Show(context.Background(), "genesis-9")
	if err != nil || !found {
		t.Fatalf("expected tournament through the executor chain, got found=%v err=%v", found, err)
	}
	if tournament.Name != "Genesis 9" {
		t.Fatalf("unexpected tournament %+v", tournament)
	}
	if got := srv.Metrics().Attempts(string(startgg.TournamentShow.Contract.Name)); got != 1 {
		t.Fatalf("expected one recorded attempt, got %d", got)
	}
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error %v", err)
	}
}

func TestNewRequiresAPIKeyForStartGG(t *testing.T) {
	_, err := New(config.Config{Provider: config.ProviderStartGG}, nil)
	if !errors.Is(err, startgg.ErrMissingAPIKey) {
		t.Fatalf("expected missing key error, got %v", err)
	}
}

func TestNewWithStartGGProviderPacesRequests(t *testing.T) {
	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":{"tournament":null}}`)
	}))
	defer upstream.Close()

	interval := 60 * time.Millisecond
	cfg := config.Config{
		Provider: config.ProviderStartGG,
		APIKey:   "secret",
		StartGG:  config.StartGGConfig{BaseURL: upstream.URL, PacingInterval: interval},
	}
	srv, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if srv.Deps().Retry {
		t.Fatalf("expected retry disabled by zero config")
	}

	svc := tournaments.NewService(srv.Deps())
	start := time.Now()
	for i := 0; i < 2; i++ {
		if _, found, err := svc.Show(context.Background(), "genesis-9"); err != nil || found {
			t.Fatalf("expected absent tournament, got found=%v err=%v", found, err)
		}
	}
	if elapsed := time.Since(start); elapsed < interval {
		t.Fatalf("expected the second request to wait %s, took %s", interval, elapsed)
	}
	if hits.Load() != 2 {
		t.Fatalf("expected 2 upstream requests, got %d", hits.Load())
	}
}

func TestNewWithFixtureProviderSkipsPacing(t *testing.T) {
	cfg := fixtureConfig()
	cfg.StartGG.PacingInterval = time.Hour
	srv, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	svc := tournaments.NewService(srv.Deps())
	for i := 0; i < 2; i++ {
		if _, _, err := svc.Show(ctx, "genesis-9"); err != nil {
			t.Fatalf("expected fixture calls without pacing, got %v", err)
		}
	}
}

func TestSelectExecutorFallsBackToFixture(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	exec, err := selectExecutor(config.Config{Provider: "mystery"}, logger)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, ok := exec.(*fixture.Executor); !ok {
		t.Fatalf("expected fixture executor, got %T", exec)
	}
	if !strings.Contains(buf.String(), "unknown provider") {
		t.Fatalf("expected warning, got %s", buf.String())
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("StartGG", nil); got != "startgg" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "*fixture.executor" {
		t.Fatalf("unexpected derived name %q", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("unexpected fallback name %q", got)
	}
}

func TestBuildMetricsHandlesSetupFailure(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	logger, buf := testutil.NewBufferLogger()
	cfg := fixtureConfig()
	cfg.Metrics.Enabled = true
	srv, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if srv.Metrics() == nil || srv.metricsServer != nil {
		t.Fatalf("expected fallback recorder without endpoint")
	}
	if !strings.Contains(buf.String(), "metrics setup failed") {
		t.Fatalf("expected setup warning, got %s", buf.String())
	}
}

func TestMetricsEndpointServesAndStops(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cfg := fixtureConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "0", ServiceName: "startgg-results-test"}
	srv, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	inner := srv.metricsServer.(netHTTPServer)
	inner.listener = ln
	srv.metricsServer = inner
	srv.Start()

	if _, _, err := tournaments.NewService(srv.Deps()).Show(context.Background(), "genesis-9"); err != nil {
		t.Fatalf("unexpected query error %v", err)
	}

	client := &http.Client{Timeout: 2 * time.Second}
	var body string
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get("http://" + ln.Addr().String() + "/metrics")
		if err == nil {
			raw, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			body = string(raw)
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if !strings.Contains(body, "startgg_query_attempts_total") {
		t.Fatalf("expected query counter in exposition, got %q", body)
	}

	client.CloseIdleConnections()
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error %v", err)
	}
}

func TestShutdownWithoutMetricsIsNoop(t *testing.T) {
	srv := &Server{}
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	srv.Start()
}

func TestMetricsMuxOnlyServesMetricsPath(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		})
		return metrics.NewRecorder(), h, func(context.Context) error { return nil }, nil
	}

	cfg := fixtureConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "9999"}
	srv, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if srv.metricsServer.Addr() != ":9999" {
		t.Fatalf("unexpected addr %q", srv.metricsServer.Addr())
	}
	handler := srv.metricsServer.Handler()
	testutil.AssertStatus(t, testutil.Serve(handler, http.MethodGet, "/metrics", nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(handler, http.MethodGet, "/", nil), http.StatusNotFound)
}
