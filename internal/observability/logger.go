// Package observability builds the process logger.
package observability

import (
	"log/slog"
	"os"

	"github.com/couchcryptid/feedsnow/internal/config"
)

// NewLogger constructs a slog.Logger from config. Format "text" suits
// interactive runs; anything else produces JSON for scheduled runs. Output
// goes to stdout so cron captures status lines alongside the report.
func NewLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
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
