package server

import (
	"fmt"
	"strings"

	"startgg-results/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving it from
// the executor type when not configured.
func normalizeProviderName(raw string, exec providers.Executor) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if exec != nil {
		return strings.ToLower(fmt.Sprintf("%T", exec))
	}
	return "provider"
}
