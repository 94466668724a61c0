// Package context holds the per-request values that travel between the
// transport and logging layers.
package context

import "context"

type requestIDKey struct{}

// WithRequestID stashes the request id so log lines anywhere below the
// middleware can carry it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns the stored request id, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	v := ctx.Value(requestIDKey{})
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
