package onroad

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so Debug calls on
// the draw path cost no formatting while logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. SetLogger may race with a draw
// running on the render thread, so access is atomic.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for onroad and its sub-packages.
// By default onroad produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by onroad:
//   - [slog.LevelDebug]: per-frame diagnostics (skipped frames, degenerate projections)
//   - [slog.LevelWarn]: drawing surface failures
//
// Example:
//
//	onroad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger the renderer writes to. Hosts that forward
// gg's own diagnostics usually pass the same logger to gg.SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
