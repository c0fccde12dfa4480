// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// New builds a slog.Logger for the given environment: human-readable text
// in development, JSON in production.
func New(env string) *slog.Logger {
	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}
