package startgg

import (
	"encoding/json"
	"fmt"
	"time"

	"startgg-results/internal/timeutil"
)

// Skip describes one list item a normalizer dropped.
type Skip struct {
	Index  int    `json:"index"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (s Skip) String() string {
	return fmt.Sprintf("item %d: %s %s", s.Index, s.Field, s.Reason)
}

// Normalized is the outcome of normalizing one response. Found is false when
// the top-level entity is absent; Value then holds the zero value. Raw counts
// the list nodes the response carried before any were skipped, so a page of
// only malformed nodes is not mistaken for the last one.
type Normalized[T any] struct {
	Value   T
	Found   bool
	Raw     int
	Skipped []Skip
}

func (n *Normalized[T]) skip(index int, field, reason string) {
	n.Skipped = append(n.Skipped, Skip{Index: index, Field: field, Reason: reason})
}

func absent[T any]() Normalized[T] {
	return Normalized[T]{}
}

func found[T any](v T) Normalized[T] {
	return Normalized[T]{Value: v, Found: true}
}

// decode unmarshals raw into a root payload. Undecodable input is reported
// as false instead of an error so normalizers stay total.
func decode[T any](raw json.RawMessage) (T, bool) {
	var out T
	if len(raw) == 0 {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false
	}
	return out, true
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

func boolOf(p *bool) bool {
	return p != nil && *p
}

func unix(p *int64) time.Time {
	if p == nil {
		return time.Time{}
	}
	return timeutil.FromUnix(*p)
}
