package startgg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"startgg-results/internal/providers"
)

// Config controls how the client reaches the start.gg GraphQL endpoint.
type Config struct {
	BaseURL    string
	Credential Credential
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client posts catalogue queries to start.gg and classifies each response.
// It makes exactly one round trip per Execute; retries are layered on top.
type Client struct {
	endpoint   string
	credential Credential
	httpClient httpDoer
	maxBody    int64
}

// NewClient constructs a start.gg client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		endpoint:   normalizeBaseURL(cfg.BaseURL),
		credential: cfg.Credential,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		maxBody:    maxResponseBytes,
	}
}

type requestBody struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// Execute sends req and returns the raw data payload or a classified error.
func (c *Client) Execute(ctx context.Context, req providers.Request) (*providers.Response, error) {
	name := req.Name()
	vars, err := req.Contract.Bind(req.Variables)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", providerName, err)
	}

	httpReq, err := c.buildRequest(ctx, req.Contract.Document, vars)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", providerName, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &providers.TransientError{Query: name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, &providers.TransientError{Query: name, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(body)) > c.maxBody {
		return nil, &providers.ProtocolError{
			Query:      name,
			StatusCode: resp.StatusCode,
			Messages:   []string{fmt.Sprintf("response body exceeds %d bytes", c.maxBody)},
		}
	}

	return providers.Classify(name, resp.StatusCode, resp.Header, body)
}

func (c *Client) buildRequest(ctx context.Context, document string, vars map[string]any) (*http.Request, error) {
	if vars == nil {
		vars = map[string]any{}
	}
	payload, err := json.Marshal(requestBody{Query: document, Variables: vars})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if !c.credential.Empty() {
		req.Header.Set("Authorization", c.credential.Header())
	}
	return req, nil
}
