package authform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/mocksy/internal/domain"
	"github.com/phrazzld/mocksy/internal/events"
	"github.com/phrazzld/mocksy/internal/platform/logger"
	"github.com/phrazzld/mocksy/internal/redact"
)

// Notification texts.
const (
	MsgSignUpSucceeded = "Account Created Successfully. Please sign in."
	MsgSignInSucceeded = "Signed in Successfully."
	MsgErrorPrefix     = "There was an error: "
	MsgUnknownError    = "There was an unknown error"
)

// ErrMissingDependency is returned by New when a required capability is nil.
var ErrMissingDependency = errors.New("missing form dependency")

// State is where a form is in its submit lifecycle.
type State int

// Form states. Succeeded and Failed are resting states: the form accepts a
// new submission from either.
const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Deps are the capabilities a form calls.
type Deps struct {
	// Authenticator defaults to StandInAuthenticator{}.
	Authenticator Authenticator
	Notifier      Notifier
	Navigator     Navigator
	// Emitter is optional; when set every resolved submission is published.
	Emitter events.EventEmitter
	// Logger is optional; the context logger is used when nil.
	Logger *slog.Logger
}

// PanicError is reported when the authenticator panics with a value that is
// not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("authenticator panicked: %v", e.Value)
}

// Form is one instance of the auth form. Its mode is fixed at construction.
// A Form is safe for concurrent use; at most one submission is in flight.
type Form struct {
	mode   domain.Mode
	schema Schema
	deps   Deps

	mu     sync.Mutex
	state  State
	values domain.FormValues
}

// New creates a form for mode.
func New(mode domain.Mode, deps Deps) (*Form, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMode, string(mode))
	}
	if deps.Notifier == nil {
		return nil, fmt.Errorf("%w: notifier", ErrMissingDependency)
	}
	if deps.Navigator == nil {
		return nil, fmt.Errorf("%w: navigator", ErrMissingDependency)
	}
	if deps.Authenticator == nil {
		deps.Authenticator = StandInAuthenticator{}
	}

	return &Form{
		mode:   mode,
		schema: SelectSchema(mode),
		deps:   deps,
	}, nil
}

// Mode returns the form's mode.
func (f *Form) Mode() domain.Mode {
	return f.mode
}

// Schema returns the validation schema for the form's mode.
func (f *Form) Schema() Schema {
	return f.schema
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Values returns the last submitted values with the password cleared.
func (f *Form) Values() domain.FormValues {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// HandleSubmit runs one submission.
//
// Invalid values are returned as a *domain.ValidationError before anything
// else happens. A submission made while another is in flight returns
// domain.ErrSubmissionInFlight. Otherwise the authenticator runs and the
// outcome is reported through exactly one notification, plus a navigation
// on success; authentication failures are never returned.
func (f *Form) HandleSubmit(ctx context.Context, values domain.FormValues) error {
	if err := f.schema.Validate(values); err != nil {
		return err
	}

	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return domain.ErrSubmissionInFlight
	}
	f.state = StateSubmitting
	f.values = values.Redacted()
	f.mu.Unlock()

	attemptID := uuid.New()
	log := f.logger(ctx).With("attempt_id", attemptID, "mode", f.mode)
	log.DebugContext(ctx, "auth form submission started")

	authErr := f.authenticate(ctx, values)

	var (
		outcome events.Outcome
		message string
		target  string
	)
	if authErr != nil {
		log.ErrorContext(ctx, "auth form submission failed", "error", redact.Error(authErr))
		outcome, message = events.OutcomeFailed, failureMessage(authErr)
		f.resolve(StateFailed)
		f.deps.Notifier.NotifyError(ctx, message)
	} else {
		message, target = f.successEffects()
		outcome = events.OutcomeSucceeded
		f.resolve(StateSucceeded)
		f.deps.Notifier.NotifySuccess(ctx, message)
		f.deps.Navigator.NavigateTo(ctx, target)
	}

	if f.deps.Emitter != nil {
		event := events.NewSubmissionEvent(attemptID, f.mode, outcome, message, target)
		if err := f.deps.Emitter.EmitEvent(ctx, event); err != nil {
			log.WarnContext(ctx, "failed to emit submission event", "error", err)
		}
	}

	return nil
}

// successEffects returns the notification and route for a successful
// submission in the form's mode.
func (f *Form) successEffects() (message, path string) {
	switch f.mode {
	case domain.ModeSignUp:
		return MsgSignUpSucceeded, domain.SignInPath
	case domain.ModeSignIn:
		return MsgSignInSucceeded, domain.RootPath
	default:
		panic(fmt.Sprintf("authform: no success effects for mode %q", string(f.mode)))
	}
}

func (f *Form) authenticate(ctx context.Context, values domain.FormValues) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = &PanicError{Value: r}
		}
	}()
	return f.deps.Authenticator.Authenticate(ctx, f.mode, values)
}

func (f *Form) resolve(state State) {
	f.mu.Lock()
	f.state = state
	f.mu.Unlock()
}

func (f *Form) logger(ctx context.Context) *slog.Logger {
	if f.deps.Logger != nil {
		return f.deps.Logger
	}
	return logger.FromContext(ctx)
}

// failureMessage builds the error notification for a failed submission.
// Failures without a readable message, including non-error panics, get the
// generic text.
func failureMessage(err error) string {
	var panicErr *PanicError
	if err == nil || errors.As(err, &panicErr) {
		return MsgUnknownError
	}
	if msg := err.Error(); msg != "" {
		return MsgErrorPrefix + msg
	}
	return MsgUnknownError
}
