package metrics

import (
	"sync"
	"time"
)

type queryStats struct {
	attempts        int
	errors          int
	rateLimitHits   int
	protocolErrors  int
	skippedItems    int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about query executions and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*queryStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*queryStats),
		otel:  otel,
	}
}

// RecordAttempt counts one round trip for a query and stores its latency.
func (r *Recorder) RecordAttempt(query string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.update(query, func(s *queryStats) {
		s.attempts++
		s.lastCallLatency = duration
		if err != nil {
			s.errors++
		}
	})
	if r.otel != nil {
		r.otel.recordAttempt(query, duration, err)
	}
}

// RecordRateLimit tracks a rate-limited response and its Retry-After hint.
func (r *Recorder) RecordRateLimit(query string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.update(query, func(s *queryStats) {
		s.rateLimitHits++
		if retryAfter > 0 {
			s.lastRetryAfter = retryAfter
		}
	})
	if r.otel != nil {
		r.otel.recordRateLimit(query, retryAfter)
	}
}

// RecordProtocolError tracks a response rejected by the upstream service.
func (r *Recorder) RecordProtocolError(query string) {
	if r == nil {
		return
	}
	r.update(query, func(s *queryStats) { s.protocolErrors++ })
	if r.otel != nil {
		r.otel.recordProtocolError(query)
	}
}

// RecordSkipped tracks list items dropped during normalization.
func (r *Recorder) RecordSkipped(query string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.update(query, func(s *queryStats) { s.skippedItems += n })
	if r.otel != nil {
		r.otel.recordSkipped(query, n)
	}
}

// Attempts returns the total round trips recorded for a query.
func (r *Recorder) Attempts(query string) int {
	return r.Snapshot(query).Attempts
}

// Errors returns the failed round trips recorded for a query.
func (r *Recorder) Errors(query string) int {
	return r.Snapshot(query).Errors
}

// RateLimitHits returns the number of rate limit responses seen for a query.
func (r *Recorder) RateLimitHits(query string) int {
	return r.Snapshot(query).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a query.
func (r *Recorder) LastRetryAfter(query string) time.Duration {
	return r.Snapshot(query).LastRetryAfter
}

// Snapshot is a copy of the counters for one query.
type Snapshot struct {
	Attempts        int
	Errors          int
	RateLimitHits   int
	ProtocolErrors  int
	SkippedItems    int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the query.
func (r *Recorder) Snapshot(query string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[query]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Attempts:        stats.attempts,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		ProtocolErrors:  stats.protocolErrors,
		SkippedItems:    stats.skippedItems,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) update(query string, fn func(*queryStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[query]
	if !ok {
		stats = &queryStats{}
		r.stats[query] = stats
	}
	fn(stats)
}
