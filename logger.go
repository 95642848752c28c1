package shapestyle

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record; Enabled reports false at all levels so
// callers skip attribute formatting.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the log output of shapestyle and its sub-packages to l.
// Nothing is logged until it is called; nil restores that default. It is
// safe to call while other goroutines are logging.
//
// Levels in use:
//   - [slog.LevelDebug]: rejected selections, shader compilation, page renders
//   - [slog.LevelWarn]: shaders resolved without a render context, failed compiles
//
// Example:
//
//	shapestyle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger. The pipeline, preview and
// state packages log through it.
func Logger() *slog.Logger {
	return current.Load()
}
