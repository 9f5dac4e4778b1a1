package providers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Outcome names the classification of one attempt.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeTransient
	OutcomeRateLimited
	OutcomeProtocol
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeTransient:
		return "transient"
	case OutcomeRateLimited:
		return "rate_limited"
	case OutcomeProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// OutcomeOf maps an Execute error back to its classification.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case isRateLimit(err):
		return OutcomeRateLimited
	case isProtocol(err):
		return OutcomeProtocol
	default:
		return OutcomeTransient
	}
}

func isRateLimit(err error) bool {
	_, ok := AsRateLimitError(err)
	return ok
}

func isProtocol(err error) bool {
	_, ok := AsProtocolError(err)
	return ok
}

var errEmptyEnvelope = errors.New("response has neither data nor errors")

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Classify turns a raw HTTP exchange into a Response or a typed error.
//
// 429 is a rate limit, 5xx and undecodable bodies are transient, and a
// GraphQL error payload or any other 4xx without usable data is a protocol
// error. Usable data is returned whatever the status, together with any
// errors that came with it.
func Classify(queryName string, status int, header http.Header, body []byte) (*Response, error) {
	switch {
	case status == http.StatusTooManyRequests:
		return nil, &RateLimitError{
			Query:      queryName,
			StatusCode: status,
			RetryAfter: ParseRetryAfter(header.Get("Retry-After"), time.Now()),
			Message:    snippet(body),
		}
	case status >= http.StatusInternalServerError:
		return nil, &TransientError{
			Query:      queryName,
			StatusCode: status,
			Err:        fmt.Errorf("unexpected status: %s", snippet(body)),
		}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if status >= http.StatusBadRequest {
			return nil, &ProtocolError{Query: queryName, StatusCode: status, Messages: []string{snippet(body)}}
		}
		return nil, &TransientError{Query: queryName, StatusCode: status, Err: fmt.Errorf("decode response: %w", err)}
	}

	hasData := len(env.Data) > 0 && !bytes.Equal(bytes.TrimSpace(env.Data), []byte("null"))
	if !hasData {
		if len(env.Errors) > 0 || status >= http.StatusBadRequest {
			return nil, &ProtocolError{Query: queryName, StatusCode: status, Messages: messages(env.Errors)}
		}
		return nil, &TransientError{Query: queryName, StatusCode: status, Err: errEmptyEnvelope}
	}

	return &Response{Data: env.Data, Errors: env.Errors}, nil
}

// ParseRetryAfter reads a Retry-After header in seconds or HTTP-date form.
func ParseRetryAfter(raw string, now time.Time) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}

func messages(errs []GraphQLError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Message != "" {
			out = append(out, e.Message)
		}
	}
	return out
}

func snippet(body []byte) string {
	const max = 256
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		s = s[:max]
	}
	return s
}
