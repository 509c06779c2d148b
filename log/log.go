// Package log provides the structured logging used by the thermo checker,
// wrapping [log/slog].
package log

import (
	"io"
	"log/slog"
	"os"
)

type (
	Attr    = slog.Attr
	Handler = slog.Handler
)

var (
	level  = new(slog.LevelVar)
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
)

// SetHandler sets the default logger's handler to the one given.
func SetHandler(h Handler) {
	logger = slog.New(h)
}

// SetTextHandler sets the default logger to write human-readable output to w.
func SetTextHandler(w io.Writer) {
	SetHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetJSONHandler sets the default logger to write JSON output to w.
func SetJSONHandler(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLogLevel sets the minimum level logged by the default handlers.
func SetLogLevel(l Level) {
	level.Set(slog.Level(l))
}

// Debug logs at [LevelDebug].
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Info logs at [LevelInfo].
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Warn logs at [LevelWarn].
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Error logs at [LevelError], with err under the "cause" key when non-nil.
func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}
	logger.Error(msg, args...)
}

// Fatal logs like [Error] and then exits with status 1.
func Fatal(msg string, err error, args ...any) {
	Error(msg, err, args...)
	os.Exit(1)
}
