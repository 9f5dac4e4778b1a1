package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordAttempt("EventSets", 10*time.Millisecond, nil)
	rec.RecordAttempt("EventSets", 15*time.Millisecond, errors.New("boom"))

	if got := rec.Attempts("EventSets"); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
	if got := rec.Errors("EventSets"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("EventSets")
	if snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastCallLatency)
	}
	if other := rec.Snapshot("TournamentShow"); other.Attempts != 0 {
		t.Fatalf("expected queries to be tracked separately, got %+v", other)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("EventSets", 5*time.Second)
	rec.RecordRateLimit("EventSets", 0)

	if got := rec.RateLimitHits("EventSets"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("EventSets"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksProtocolErrorsAndSkips(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProtocolError("PlayerInfo")
	rec.RecordSkipped("PlayerInfo", 3)
	rec.RecordSkipped("PlayerInfo", 0)

	snap := rec.Snapshot("PlayerInfo")
	if snap.ProtocolErrors != 1 || snap.SkippedItems != 3 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordAttempt("q", time.Millisecond, nil)
	rec.RecordRateLimit("q", time.Second)
	rec.RecordProtocolError("q")
	rec.RecordSkipped("q", 1)
	if snap := rec.Snapshot("q"); snap != (Snapshot{}) {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}
