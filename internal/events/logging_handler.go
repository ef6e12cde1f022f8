package events

import (
	"context"
	"log/slog"
)

// LoggingHandler writes every submission outcome to a structured log.
type LoggingHandler struct {
	logger *slog.Logger
}

// NewLoggingHandler creates a LoggingHandler writing to logger.
func NewLoggingHandler(logger *slog.Logger) *LoggingHandler {
	return &LoggingHandler{logger: logger.With("component", "submission_log")}
}

// HandleEvent implements EventHandler.
func (h *LoggingHandler) HandleEvent(ctx context.Context, event *SubmissionEvent) error {
	h.logger.InfoContext(ctx, "auth form submission resolved",
		"attempt_id", event.ID,
		"mode", event.Mode,
		"outcome", event.Outcome,
		"navigated_to", event.NavigatedTo)
	return nil
}
