package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Config controls logger construction.
type Config struct {
	Level   string // debug, info, warn, error (default info)
	Format  string // text or json (default text)
	Service string
	Version string
}

// NewLogger returns a structured logger configured from cfg.
func NewLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	if cfg.Service != "" {
		logger = logger.With(slog.String(FieldService, cfg.Service))
	}
	if cfg.Version != "" {
		logger = logger.With(slog.String(FieldVersion, cfg.Version))
	}
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
