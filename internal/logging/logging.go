// Package logging builds the application's slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ytget/animal-sounds/internal/config"
)

// New creates a *slog.Logger writing to stderr and sets it as the default.
//
// Format "json" produces JSON lines; anything else produces text with source info.
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
func New(cfg config.LogConfig) *slog.Logger {
	logger := NewWithWriter(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// NewWithWriter is New without touching the default logger.
func NewWithWriter(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
