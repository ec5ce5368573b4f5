package pagverde

import (
	"context"

	"github.com/pagverde/pagverde-go/internal/debug"
)

// ContextWithDebug forces debug logging on or off for the calls made with
// the returned context, overriding the client-level setting.
func ContextWithDebug(ctx context.Context, enabled bool) context.Context {
	return debug.WithOverride(ctx, enabled)
}

// SetupDebugLogger installs a process-wide slog text logger on stderr. With
// debugEnabled the level is Debug, so per-request log lines show up;
// otherwise Warn.
func SetupDebugLogger(debugEnabled bool) {
	debug.SetupLogger(debugEnabled)
}
