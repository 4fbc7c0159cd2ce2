// Package logging installs the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
)

// LevelFromFlags picks the most verbose level requested on the command line.
// Without flags only warnings and errors are shown.
func LevelFromFlags(debug, verbose, quiet bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Setup makes a text logger writing to w at level the default logger
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
