package teststubs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"startgg-results/internal/domain"
	"startgg-results/internal/export"
	"startgg-results/internal/providers"
)

func TestStubExecutorTracksCalls(t *testing.T) {
	err := errors.New("boom")
	e := &StubExecutor{Err: err, Notify: make(chan struct{})}
	if _, got := e.Execute(context.Background(), providers.Request{}); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	select {
	case <-e.Notify:
	default:
		t.Fatalf("expected notify channel closed on first call")
	}
	_, _ = e.Execute(context.Background(), providers.Request{})
	if e.Calls.Load() != 2 {
		t.Fatalf("expected call count 2, got %d", e.Calls.Load())
	}
}

func TestStubExecutorReturnsResponse(t *testing.T) {
	e := &StubExecutor{Response: &providers.Response{Data: json.RawMessage(`{}`), Attempts: 1}}
	resp, err := e.Execute(context.Background(), providers.Request{})
	if err != nil || resp.Attempts != 1 {
		t.Fatalf("unexpected response %+v err %v", resp, err)
	}
}

func TestStubExporter(t *testing.T) {
	e := &StubExporter{}
	results := []domain.EventResults{{Event: domain.Event{Name: "Melee Singles"}}}
	targets := export.Targets{JSON: "out.json"}
	if err := e.Export(results, targets); err != nil {
		t.Fatalf("expected export success, got %v", err)
	}
	if len(e.Written) != 1 || e.Targets.JSON != "out.json" {
		t.Fatalf("unexpected recorded export %+v", e)
	}

	e.Err = errors.New("write error")
	if err := e.Export(results, targets); err == nil {
		t.Fatalf("expected export error")
	}
	if e.Calls != 2 {
		t.Fatalf("expected 2 calls, got %d", e.Calls)
	}
}
