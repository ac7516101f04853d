// Package logger builds the slog logger shared by both binaries.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a text logger at the given level ("debug", "info", "warn",
// "error") writing to w.
func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler)
}

// NewFile opens path for appending and returns a logger writing to it
// along with the file so the caller can close it.  The booking desk logs
// to a file so log lines never interleave with the menu.  An empty path
// logs to stderr and returns a nil closer.
func NewFile(path, level string, extra ...io.Writer) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return New(io.MultiWriter(append([]io.Writer{os.Stderr}, extra...)...), level), nil, nil
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	writer := io.MultiWriter(append([]io.Writer{file}, extra...)...)
	return New(writer, level), file, nil
}

// Discard returns a logger that drops everything, handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
