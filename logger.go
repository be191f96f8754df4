package svgfilter

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every log record. Enabled returns false so a
// disabled logger costs nothing beyond the interface call, the same
// shape as the teacher pack's gogpu-gg logger.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the evaluator. By default
// svgfilter produces no log output; pass nil to restore that default.
//
// Log levels used:
//   - slog.LevelDebug: one record per primitive dispatched (kind,
//     resolved in/in2 names, result name).
//   - slog.LevelWarn: an in/in2 reference failed to resolve (no error is
//     raised, per spec.md §7, but it is worth surfacing to a caller who
//     opts into logging).
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the currently configured logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
