package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/mocksy/internal/domain"
)

// AuthenticateCall records the arguments of one Authenticate call.
type AuthenticateCall struct {
	Mode   domain.Mode
	Values domain.FormValues
}

// MockAuthenticator implements authform.Authenticator for testing
type MockAuthenticator struct {
	// Err is returned by Authenticate when AuthenticateFn is nil
	Err error

	// AuthenticateFn allows for custom behavior in tests
	AuthenticateFn func(ctx context.Context, mode domain.Mode, values domain.FormValues) error

	mu    sync.Mutex
	calls []AuthenticateCall
}

// Authenticate implements the authform.Authenticator interface
func (m *MockAuthenticator) Authenticate(ctx context.Context, mode domain.Mode, values domain.FormValues) error {
	m.mu.Lock()
	m.calls = append(m.calls, AuthenticateCall{Mode: mode, Values: values})
	fn := m.AuthenticateFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, mode, values)
	}
	return m.Err
}

// Calls returns a copy of the recorded calls.
func (m *MockAuthenticator) Calls() []AuthenticateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]AuthenticateCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times Authenticate was called.
func (m *MockAuthenticator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
