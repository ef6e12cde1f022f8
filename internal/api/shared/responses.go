package shared

import (
	"net/http"

	"github.com/phrazzld/mocksy/internal/platform/logger"
)

// RespondWithError writes a plain-text error response with the given status
// code and message. The trace ID from the request context is included so the
// user can quote it.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("sending error response",
			"status_code", status,
			"message", message,
			"path", r.URL.Path,
			"method", r.Method)
	} else {
		log.Debug("sending error response",
			"status_code", status,
			"message", message,
			"path", r.URL.Path,
			"method", r.Method)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if traceID != "" {
		w.Header().Set("X-Trace-ID", traceID)
	}
	w.WriteHeader(status)
	body := message
	if traceID != "" {
		body += " (trace " + traceID + ")"
	}
	if _, err := w.Write([]byte(body + "\n")); err != nil {
		log.Error("failed to write error response", "error", err)
	}
}
