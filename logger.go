package bitmap

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for the bitmap package.
// By default, bitmap produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by bitmap:
//   - [slog.LevelDebug]: load, save and generation details (path, size)
//   - [slog.LevelWarn]: a file needed the fallback decoder
//
// Every record carries pkg=bitmap and, for image events, a size group with
// the width and height.
//
// Example:
//
//	bitmap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by bitmap.
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logger returns the current logger with the attributes shared by every
// record this package emits.
func logger() *slog.Logger {
	return Logger().With(slog.String("pkg", "bitmap"))
}

// sizeAttr groups image dimensions as size.width and size.height.
func sizeAttr(width, height int) slog.Attr {
	return slog.Group("size", slog.Int("width", width), slog.Int("height", height))
}
