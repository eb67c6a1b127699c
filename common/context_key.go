package common

import "context"

type ContextKey string

const ContextRequestIDKey ContextKey = "request_id"

// WithRequestID stores the request id used to correlate datastore log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextRequestIDKey, id)
}

// GetContextRequestID returns the request id carried by ctx, or "" when absent.
func GetContextRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ContextRequestIDKey).(string); ok {
		return v
	}
	return ""
}
