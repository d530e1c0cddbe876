package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxLoggerKey struct{}

// Get returns the logger stored by With or WithFields, falling back to the process logger.
func Get(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, _ := ctx.Value(ctxLoggerKey{}).(*zap.Logger); l != nil {
			return l
		}
	}
	return defaultLogger
}

// With stores l in ctx. A nil l leaves Get on the fallback.
func With(ctx context.Context, l *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxLoggerKey{}, l)
}

// WithFields derives a child of the ctx logger carrying fields.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	if len(fields) == 0 {
		return With(ctx, Get(ctx))
	}
	return With(ctx, Get(ctx).With(fields...))
}
