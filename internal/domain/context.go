package domain

import "context"

type contextKey string

const sessionIDKey contextKey = "session_id"

// WithSessionID stores the server-side session id in the context
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// GetSessionIDFromContext returns the server-side session id, or "" when none was set
func GetSessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
