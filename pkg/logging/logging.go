// Package logging configures structured logging for log/slog: colored text
// via tint for terminals, or JSON for log collectors.
//
// Usage:
//
//	logging.Setup("info", "text")   // colored output on stderr
//	logging.Setup("debug", "json")  // JSON lines on stderr
//
// Levels: debug, info, warn, error (default: info).
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default slog logger on stderr.
func Setup(level, format string) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, ParseLevel(level), format)))
}

// NewHandler returns a JSON handler when format is "json" and a tint
// handler otherwise.
func NewHandler(w io.Writer, level slog.Level, format string) slog.Handler {
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})
}

// ParseLevel maps a level name to a slog level, defaulting to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
