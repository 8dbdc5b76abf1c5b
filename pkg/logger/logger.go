package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New constructs a JSON slog logger writing to stdout, leveled by LOG_LEVEL.
func New() *slog.Logger {
	return NewWithWriter(os.Stdout, slog.LevelInfo)
}

// NewWithWriter builds the same logger on an arbitrary writer. The CLI uses it
// to keep stdout reserved for summaries.
func NewWithWriter(w io.Writer, fallback slog.Level) *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"), fallback)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", "summarizer")
}

func parseLevel(level string, fallback slog.Level) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
