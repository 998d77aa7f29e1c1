package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx. A context without one
// yields zerolog's disabled logger, so callers never nil-check.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags the context logger with the subsystem name.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// WithPerspective tags the context logger with a perspective name.
func WithPerspective(ctx context.Context, name string) context.Context {
	return withField(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("perspective", name)
	})
}

// WithScript tags the context logger with the script being run.
func WithScript(ctx context.Context, name string) context.Context {
	return withField(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("script", name)
	})
}

func withField(ctx context.Context, add func(zerolog.Context) zerolog.Context) context.Context {
	return WithContext(ctx, add(FromContext(ctx).With()).Logger())
}
