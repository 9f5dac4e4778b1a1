package metrics

import "testing"

func TestMetricFieldKeysAreStable(t *testing.T) {
	if AttrQuery != "query" || AttrOutcome != "outcome" {
		t.Fatalf("unexpected attribute keys %q %q", AttrQuery, AttrOutcome)
	}
}
