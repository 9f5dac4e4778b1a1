package config

import "testing"

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	cases := map[string]int{"": 3, "7": 7, "0": 3, "-1": 3, "x": 3}
	for raw, want := range cases {
		t.Setenv("INT_TEST", raw)
		if got := intEnvOrDefault("INT_TEST", 3); got != want {
			t.Fatalf("expected %d for %q, got %d", want, raw, got)
		}
	}
}
