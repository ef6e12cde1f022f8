package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/mocksy/internal/domain"
)

// Outcome is how a submission resolved.
type Outcome string

// Submission outcomes.
const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// SubmissionEvent records the resolution of one auth form submission.
type SubmissionEvent struct {
	// ID identifies the submission attempt; it matches the attempt_id log field.
	ID uuid.UUID `json:"id"`

	// Mode is the form mode the submission ran in.
	Mode domain.Mode `json:"mode"`

	// Outcome reports whether authentication succeeded.
	Outcome Outcome `json:"outcome"`

	// Message is the notification shown to the user.
	Message string `json:"message"`

	// NavigatedTo is the route the form navigated to, empty on failure.
	NavigatedTo string `json:"navigated_to,omitempty"`

	// CreatedAt is the timestamp when the submission resolved.
	CreatedAt time.Time `json:"created_at"`
}

// NewSubmissionEvent creates a SubmissionEvent for the attempt id.
func NewSubmissionEvent(
	id uuid.UUID,
	mode domain.Mode,
	outcome Outcome,
	message, navigatedTo string,
) *SubmissionEvent {
	return &SubmissionEvent{
		ID:          id,
		Mode:        mode,
		Outcome:     outcome,
		Message:     message,
		NavigatedTo: navigatedTo,
		CreatedAt:   time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *SubmissionEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows the form to publish outcomes without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *SubmissionEvent) error
}
