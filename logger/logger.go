// Package logger builds the process's structured logger. Components never
// reach for a global logger; the caller constructs one here and injects
// it, so tests can capture or suppress output.
package logger

import (
	"io"
	"log/slog"
)

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
