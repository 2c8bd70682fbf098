// Package utils holds small helpers shared by the transports: context keys,
// identifier generators, JSON/attachment response writers and the resty client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they cannot collide with
// string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey stores the request trace id set by the HTTP trace middleware.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id and whether a non-empty one was set.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
