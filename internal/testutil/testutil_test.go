package testutil

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"startgg-results/internal/providers"
	"startgg-results/internal/query"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if MustParseRFC3339(now.Format(time.RFC3339)) != now {
		t.Fatalf("expected parse round trip")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid RFC3339")
		}
	}()
	MustParseRFC3339("not-a-time")
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	if !strings.Contains(rr.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestNewDeps(t *testing.T) {
	deps, buf := NewDeps(nil)
	if deps.Logger == nil || deps.Metrics == nil {
		t.Fatalf("expected logger and recorder, got %+v", deps)
	}
	if deps.Retry {
		t.Fatalf("expected retries disabled")
	}
	deps.Logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
}

func TestCountingPacer(t *testing.T) {
	p := &CountingPacer{}
	_ = p.Wait(context.Background())
	_ = p.Wait(context.Background())
	if p.Calls.Load() != 2 {
		t.Fatalf("expected 2 waits, got %d", p.Calls.Load())
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestFailingAndRecordingExecutors(t *testing.T) {
	ok := providers.ExecutorFunc(func(ctx context.Context, req providers.Request) (*providers.Response, error) {
		return &providers.Response{Attempts: 1}, nil
	})
	boom := errors.New("boom")
	rec := &RecordingExecutor{Next: FailingExecutor{
		Next:  ok,
		Match: VarEquals(query.EventSets, "eventId", "1"),
		Err:   boom,
	}}

	show := providers.Request{Contract: query.MustLookup(query.TournamentShow), Variables: query.Variables{"tourneySlug": "x"}}
	sets := providers.Request{Contract: query.MustLookup(query.EventSets), Variables: query.Variables{"eventId": "1", "page": 1}}

	if _, err := rec.Execute(context.Background(), show); err != nil {
		t.Fatalf("expected passthrough, got %v", err)
	}
	if _, err := rec.Execute(context.Background(), sets); !errors.Is(err, boom) {
		t.Fatalf("expected matched request to fail, got %v", err)
	}
	names := rec.Names()
	if len(names) != 2 || names[0] != query.TournamentShow || names[1] != query.EventSets {
		t.Fatalf("unexpected recorded names %v", names)
	}
}
