package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New initializes the default slog logger from LOG_FORMAT and LOG_LEVEL.
// LOG_FORMAT is "text" (default, with source locations) or "json";
// LOG_LEVEL is one of debug, info (default), warn, error.
func New() {
	slog.SetDefault(slog.New(NewHandler(os.Stdout, os.Getenv("LOG_FORMAT"), os.Getenv("LOG_LEVEL"))))
}

// NewHandler builds the handler used by New.
func NewHandler(w io.Writer, format, level string) slog.Handler {
	lvl := ParseLevel(level)
	switch format {
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     lvl,
			AddSource: true,
		})
	}
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
