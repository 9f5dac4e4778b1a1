package fixture

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"startgg-results/internal/providers"
)

//go:embed data/*.json
var bundled embed.FS

// Executor serves canned responses for every catalogue query. It is used for
// offline runs and tests; each call classifies its payload exactly like a
// live 200 response would be.
type Executor struct {
	mu        sync.Mutex
	files     fs.FS
	overrides map[string][]byte
	calls     map[string]int
}

// New creates a fixture executor backed by the bundled responses.
func New() *Executor {
	return &Executor{
		files:     bundled,
		overrides: make(map[string][]byte),
		calls:     make(map[string]int),
	}
}

// WithResponse replaces the canned body of a query. body is a full response
// envelope, e.g. {"data":{...}}.
func (e *Executor) WithResponse(name, body string) *Executor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.overrides[name] = []byte(body)
	return e
}

// Calls reports how many times a query was executed.
func (e *Executor) Calls(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[name]
}

// Execute returns the canned response for req. Pages after the first return
// a null root so callers walking pages stop.
func (e *Executor) Execute(ctx context.Context, req providers.Request) (*providers.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := req.Name()
	if _, err := req.Contract.Bind(req.Variables); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}

	e.mu.Lock()
	e.calls[name]++
	body, ok := e.overrides[name]
	e.mu.Unlock()

	if !ok {
		if page := pageOf(req); page > 1 {
			body = []byte(fmt.Sprintf(`{"data":{%q:null}}`, req.Contract.Root))
		} else {
			raw, err := fs.ReadFile(e.files, "data/"+name+".json")
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &providers.ProtocolError{Query: name, Messages: []string{"no fixture for query"}}
			}
			if err != nil {
				return nil, err
			}
			body = raw
		}
	}
	return providers.Classify(name, http.StatusOK, http.Header{}, body)
}

func pageOf(req providers.Request) int {
	switch v := req.Variables["page"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
