// Package main implements the entry point for the Mocksy web server, which
// serves the sign-in and sign-up pages.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/mocksy/internal/config"
	"github.com/phrazzld/mocksy/internal/platform/logger"
)

// main is the entry point for the mocksy server.
func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// run loads configuration, sets up logging, wires the application and serves
// until a shutdown signal arrives.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	app, err := newApplication(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	dir := "."
	if d := os.Getenv("MOCKSY_CONFIG_DIR"); d != "" {
		dir = d
	}

	cfg, err := config.LoadFrom(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"flash_ttl_seconds", cfg.Flash.TTLSeconds)

	return cfg, nil
}
