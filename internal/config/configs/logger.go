package configs

import (
	"log/slog"
	"strings"
)

// Logger defines configuration options for the structured logger. Level
// controls the minimum level emitted and accepts "debug", "info",
// "warn" and "error". Format selects the output encoding, either
// "text" (default) or "json".
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel converts the textual level into a slog.Level. Unknown levels
// default to slog.LevelInfo.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat validates and normalises the requested log format. Anything
// other than "json" returns "text".
func (c Logger) SlogFormat() string {
	switch strings.ToLower(c.Format) {
	case "json":
		return "json"
	default:
		return "text"
	}
}
