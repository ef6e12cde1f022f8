package authform

import (
	"context"
	"time"

	"github.com/phrazzld/mocksy/internal/domain"
)

// Authenticator performs the mode-specific action of a submission. It is
// the point where real registration or login plugs in. A returned error
// becomes an error notification; its message is shown to the user, so
// implementations must return user-safe errors.
type Authenticator interface {
	Authenticate(ctx context.Context, mode domain.Mode, values domain.FormValues) error
}

// AuthenticatorFunc adapts an ordinary function to the Authenticator interface.
type AuthenticatorFunc func(ctx context.Context, mode domain.Mode, values domain.FormValues) error

// Authenticate calls f(ctx, mode, values).
func (f AuthenticatorFunc) Authenticate(ctx context.Context, mode domain.Mode, values domain.FormValues) error {
	return f(ctx, mode, values)
}

// Notifier shows transient messages to the user.
type Notifier interface {
	NotifySuccess(ctx context.Context, message string)
	NotifyError(ctx context.Context, message string)
}

// Navigator changes the active route.
type Navigator interface {
	NavigateTo(ctx context.Context, path string)
}

// StandInAuthenticator accepts every submission. It optionally waits Delay
// first to behave like a backend round trip.
type StandInAuthenticator struct {
	Delay time.Duration
}

// Ensure StandInAuthenticator implements Authenticator
var _ Authenticator = StandInAuthenticator{}

// Authenticate implements Authenticator.
func (a StandInAuthenticator) Authenticate(ctx context.Context, _ domain.Mode, _ domain.FormValues) error {
	if a.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(a.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
