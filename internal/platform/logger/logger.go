// Package logger provides structured logging functionality for the application.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/mocksy/internal/config"
)

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger writing to
// stdout with the configured level and sets it as the default logger.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return SetupWithWriter(cfg, os.Stdout)
}

// SetupWithWriter is Setup with an explicit output.
func SetupWithWriter(cfg config.ServerConfig, out io.Writer) (*slog.Logger, error) {
	level := ParseLevel(cfg.LogLevel)
	if level == nil {
		// Create a temporary logger to output the warning
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
		info := slog.LevelInfo
		level = &info
	}

	opts := &slog.HandlerOptions{
		Level: *level,
	}

	logger := slog.New(slog.NewJSONHandler(out, opts))

	// Set this logger as the default for the application
	slog.SetDefault(logger)

	return logger, nil
}

// ParseLevel maps a configured level name (case-insensitive) to a slog level.
// It returns nil for unknown names.
func ParseLevel(name string) *slog.Level {
	var level slog.Level
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil
	}
	return &level
}
