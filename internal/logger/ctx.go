package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey int

const loggerCtxKey ctxKey = 1

// WithLogger returns ctx carrying l, typically a request-scoped child.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerCtxKey, l)
}

// FromContext returns the logger stored in ctx, else fallback, else a no-op
// logger. The result is never nil.
func FromContext(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerCtxKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if fallback != nil {
		return fallback
	}
	return zap.NewNop()
}
