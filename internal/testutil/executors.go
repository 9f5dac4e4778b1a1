package testutil

import (
	"context"
	"sync"

	"startgg-results/internal/providers"
	"startgg-results/internal/query"
)

// FailingExecutor returns Err for requests matched by Match and delegates
// every other request to Next.
type FailingExecutor struct {
	Next  providers.Executor
	Match func(providers.Request) bool
	Err   error
}

func (f FailingExecutor) Execute(ctx context.Context, req providers.Request) (*providers.Response, error) {
	if f.Match != nil && f.Match(req) {
		return nil, f.Err
	}
	return f.Next.Execute(ctx, req)
}

// VarEquals matches requests for name whose variable key equals value.
func VarEquals(name query.Name, key string, value any) func(providers.Request) bool {
	return func(req providers.Request) bool {
		return req.Contract.Name == name && req.Variables[key] == value
	}
}

// RecordingExecutor delegates to Next and keeps every request it saw.
type RecordingExecutor struct {
	Next providers.Executor

	mu       sync.Mutex
	requests []providers.Request
}

func (r *RecordingExecutor) Execute(ctx context.Context, req providers.Request) (*providers.Response, error) {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.mu.Unlock()
	return r.Next.Execute(ctx, req)
}

// Requests returns a copy of the recorded requests in call order.
func (r *RecordingExecutor) Requests() []providers.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]providers.Request, len(r.requests))
	copy(out, r.requests)
	return out
}

// Names returns the query names of the recorded requests in call order.
func (r *RecordingExecutor) Names() []query.Name {
	reqs := r.Requests()
	out := make([]query.Name, len(reqs))
	for i, req := range reqs {
		out[i] = req.Contract.Name
	}
	return out
}
