package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithGroupID creates a child logger with a group_id field
func WithGroupID(ctx context.Context, groupID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("group_id", groupID).Logger()
	return WithContext(ctx, childLogger)
}

// WithRequestID creates a child logger with a request_id field
func WithRequestID(ctx context.Context, requestID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("request_id", requestID).Logger()
	return WithContext(ctx, childLogger)
}
