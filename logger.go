package blit

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// nopHandler discards all records; Enabled returns false so callers skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	if os.Getenv("BLIT_DEBUG") != "" {
		loggerPtr.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		return
	}
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger for this package and all backends. By default nothing is logged,
// unless BLIT_DEBUG is set in the environment. Pass nil to disable logging.
//
// Log levels:
//   - [slog.LevelDebug]: buffer construction and blit parameters
//   - [slog.LevelWarn]: native resources that failed to release
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
