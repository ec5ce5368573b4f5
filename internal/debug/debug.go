// Package debug provides context-based debug overrides with structured logging.
package debug

import (
	"context"
	"log/slog"
	"os"
)

type contextKey string

const overrideKey contextKey = "debug_override"

// WithOverride returns a context that forces debug on or off for every call
// made with it, taking precedence over the client-level debug flag.
func WithOverride(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, overrideKey, enabled)
}

// FromContext returns the per-call debug override and whether one is set.
func FromContext(ctx context.Context) (enabled, ok bool) {
	v, ok := ctx.Value(overrideKey).(bool)
	return v, ok
}

// SetupLogger configures slog based on debug mode.
func SetupLogger(debugEnabled bool) {
	var level slog.Level
	if debugEnabled {
		level = slog.LevelDebug
	} else {
		level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
