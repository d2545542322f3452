package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

type reqIDKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the request logger, or slog.Default outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithRequestID stores the request id and tags the context logger with it.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	ctx = context.WithValue(ctx, reqIDKey{}, reqID)
	return WithContext(ctx, FromContext(ctx).With("req_id", reqID))
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(reqIDKey{}).(string)
	return id
}
