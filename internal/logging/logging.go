// Package logging provides the diagnostic side-channel. The picker
// owns the terminal, so diagnostics go to a log file instead of
// stderr; every degraded-mode fallback reports here.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Setup opens (or creates) the log file at path and returns a logger
// writing to it. When the file cannot be opened the returned logger
// discards everything, so callers can log unconditionally.
func Setup(path string) *slog.Logger {
	if path == "" {
		return slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return slog.New(slog.DiscardHandler)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(f, nil))
}

// ForComponent returns a child logger tagged with a component name.
func ForComponent(base *slog.Logger, name string) *slog.Logger {
	if base == nil {
		return slog.New(slog.DiscardHandler)
	}
	return base.With("component", name)
}
