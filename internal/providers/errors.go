package providers

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrProviderUnavailable signals a missing or misconfigured executor.
var ErrProviderUnavailable = errors.New("provider unavailable")

// RateLimitError captures HTTP 429 responses from the upstream API.
type RateLimitError struct {
	Query      string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "rate limited"
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.RetryAfter > 0 {
		msg = fmt.Sprintf("%s retry_after=%s", msg, e.RetryAfter)
	}
	return msg
}

// TransientError is a failure that may succeed when retried: transport
// errors, timeouts, 5xx responses and undecodable bodies.
type TransientError struct {
	Query      string
	StatusCode int
	Err        error
}

func (e *TransientError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: transient failure (status=%d): %v", e.Query, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: transient failure: %v", e.Query, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// ProtocolError is a request the server rejected: a GraphQL error payload
// without data, a non-429 4xx without data, or a response too large to
// accept. It is never retried.
type ProtocolError struct {
	Query      string
	StatusCode int
	Messages   []string
}

func (e *ProtocolError) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if msg == "" {
		msg = "request rejected"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Query, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Query, msg)
}

// ExhaustedError is returned once every allowed attempt failed.
// Last is the final retryable error and stays reachable through errors.As.
type ExhaustedError struct {
	Query    string
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: giving up after %d attempts: %v", e.Query, e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AsTransientError attempts to unwrap an error into a TransientError.
func AsTransientError(err error) (*TransientError, bool) {
	var tErr *TransientError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// AsProtocolError attempts to unwrap an error into a ProtocolError.
func AsProtocolError(err error) (*ProtocolError, bool) {
	var pErr *ProtocolError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

// IsRetryable reports whether err is worth another attempt.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var exhausted *ExhaustedError
	if errors.As(err, &exhausted) {
		return false
	}
	if _, ok := AsProtocolError(err); ok {
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	_, ok := AsTransientError(err)
	return ok
}
