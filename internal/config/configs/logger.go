package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger defines configuration options for the structured logger. Level
// accepts "debug", "info", "warn" and "error". Format may be "text"
// (default) or "json"; unknown formats fall back to "text".
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
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat normalises the requested log format to "text" or "json".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(c.Format, "json") {
		return "json"
	}
	return "text"
}

// New builds a slog.Logger writing to w with the configured level and
// format. attrs are attached to every record.
func (c Logger) New(w io.Writer, attrs ...slog.Attr) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	var handler slog.Handler
	switch c.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler.WithAttrs(attrs))
}
