package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithLogger returns a copy of ctx carrying l. It panics if l is nil.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	if l == nil {
		panic("logger: WithLogger called with nil logger")
	}
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOrDefault(ctx, slog.Default())
}

// FromContextOrDefault returns the logger stored in ctx, or def when ctx is
// nil or carries no logger.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if ctx == nil {
		return def
	}
	if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return def
}
