package startgg

import "time"

const (
	providerName       = "startgg"
	defaultBaseURL     = "https://api.start.gg/gql/alpha"
	defaultHTTPTimeout = 10 * time.Second
	maxResponseBytes   = 8 << 20
)
