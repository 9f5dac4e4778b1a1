package startgg

import (
	"errors"
	"strings"
)

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("startgg: missing API key")

// Credential is the prebuilt Authorization header value. It is created once
// and shared read-only by every request.
type Credential struct {
	header string
}

// NewCredential builds a bearer credential from an API key.
func NewCredential(apiKey string) (Credential, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return Credential{}, ErrMissingAPIKey
	}
	return Credential{header: "Bearer " + apiKey}, nil
}

// Header returns the Authorization header value.
func (c Credential) Header() string {
	return c.header
}

// Empty reports whether the credential carries no key.
func (c Credential) Empty() bool {
	return c.header == ""
}

// String hides the key so credentials can be logged safely.
func (c Credential) String() string {
	if c.Empty() {
		return "Credential(none)"
	}
	return "Credential(Bearer ****)"
}
