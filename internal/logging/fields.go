package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldQuery      = "query"
	FieldAttempt    = "attempt"
	FieldAttempts   = "max_attempts"
	FieldDelayMS    = "delay_ms"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldSkipped    = "skipped"
	FieldIndex      = "index"
	FieldField      = "field"
	FieldReason     = "reason"
	FieldSlug       = "slug"
	FieldEventID    = "event_id"
	FieldDurationMS = "duration_ms"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
