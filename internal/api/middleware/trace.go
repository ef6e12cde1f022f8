package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/mocksy/internal/api/shared"
	"github.com/phrazzld/mocksy/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that adds a trace ID to the request
// context and stores a logger carrying that trace ID, so that every log line
// written while handling the request can be correlated.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
