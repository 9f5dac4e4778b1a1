package providers

import (
	"context"
	"encoding/json"

	"startgg-results/internal/query"
)

// Request is one execution of a catalogue query.
// Retry enables bounded retries of transient failures for this call only.
type Request struct {
	Contract  query.Contract
	Variables query.Variables
	Retry     bool
}

// Name returns the query name, used for logging and metrics.
func (r Request) Name() string {
	return string(r.Contract.Name)
}

// GraphQLError is one entry of the response "errors" array.
type GraphQLError struct {
	Message string   `json:"message"`
	Path    []any    `json:"path,omitempty"`
	Type    string   `json:"type,omitempty"`
	Locs    []ErrLoc `json:"locations,omitempty"`
}

// ErrLoc is a document position reported with a GraphQL error.
type ErrLoc struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Response carries the raw "data" payload of a successful query.
// Errors holds any GraphQL errors that arrived alongside data.
type Response struct {
	Data     json.RawMessage
	Errors   []GraphQLError
	Attempts int
}

// Partial reports whether the payload came with GraphQL errors.
func (r *Response) Partial() bool {
	return r != nil && len(r.Errors) > 0
}

// Executor sends a query to the upstream API and classifies the outcome.
type Executor interface {
	Execute(ctx context.Context, req Request) (*Response, error)
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, req Request) (*Response, error)

func (f ExecutorFunc) Execute(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}
