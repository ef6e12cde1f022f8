package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/mocksy/internal/api"
	"github.com/phrazzld/mocksy/internal/authform"
	"github.com/phrazzld/mocksy/internal/config"
	"github.com/phrazzld/mocksy/internal/events"
	"github.com/phrazzld/mocksy/internal/service/flash"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	flashService  *flash.Service
	authenticator authform.Authenticator
	eventEmitter  *events.InMemoryEventEmitter
	authHandler   *api.AuthFormHandler
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.flashService, err = flash.NewService(cfg.Flash)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize flash service: %w", err)
	}

	// Authentication is a stand-in until a real identity backend exists.
	app.authenticator = authform.StandInAuthenticator{
		Delay: time.Duration(cfg.Auth.StandInDelayMillis) * time.Millisecond,
	}
	logger.Info("stand-in authenticator configured",
		"delay_ms", cfg.Auth.StandInDelayMillis)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewLoggingHandler(logger))

	app.authHandler, err = api.NewAuthFormHandler(app.flashService, app.authenticator, app.eventEmitter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth form handler: %w", err)
	}

	return app, nil
}
