// Package logfmt configures the process logger.
package logfmt

import (
	"io"
	"log/slog"
	"os"
)

// Options выбирает формат и уровень журнала.
type Options struct {
	// Verbose включает debug-уровень.
	Verbose bool
	// JSON switches the handler from text to JSON.
	JSON bool
	// Writer receives log records. Nil means stderr.
	Writer io.Writer
}

// New returns a logger configured per opts.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}

	hopts := &slog.HandlerOptions{Level: level}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

// Quiet returns a logger that drops everything below the error level.
func Quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}
