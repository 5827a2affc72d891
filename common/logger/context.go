package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are attached to every log record emitted with a context carrying them.
// Handlers and the worker enrich the context once, and every slog.*Context call below
// picks the fields up without repeating them.
type LogFields struct {
	CompanyID     *int64
	UserID        *int64
	JobID         *int64
	ApplicationID *int64
	MessageID     *string // Redis stream message ID
	EventType     *string // e.g. "page_published"
	Component     string  // e.g. "careerline.service.draft"
}

// WithLogFields enriches ctx. Newer non-nil values replace older ones.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields returns the fields on ctx, or the zero value.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.CompanyID != nil {
		result.CompanyID = next.CompanyID
	}
	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.JobID != nil {
		result.JobID = next.JobID
	}
	if next.ApplicationID != nil {
		result.ApplicationID = next.ApplicationID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.EventType != nil {
		result.EventType = next.EventType
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr returns a pointer to v, for inline LogFields literals.
func Ptr[T any](v T) *T {
	return &v
}

// Truncate shortens s to maxLen bytes, appending "..." when cut.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
