package logger

import (
	"log/slog"
	"os"
)

// New creates a preconfigured slog.Logger. The level can be raised or
// lowered via the LOG_LEVEL environment variable (debug, info, warn, error).
func New() *slog.Logger {
	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		_ = level.UnmarshalText([]byte(v))
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
