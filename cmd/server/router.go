package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/phrazzld/mocksy/internal/api/middleware"
	"github.com/phrazzld/mocksy/internal/api/shared"
	"github.com/phrazzld/mocksy/internal/domain"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	r.Get(domain.RootPath, app.authHandler.Home)
	for _, mode := range domain.Modes {
		r.Get(mode.Path(), app.authHandler.Show(mode))
		r.Post(mode.Path(), app.authHandler.Submit(mode))
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Page not found")
	})

	return r
}
