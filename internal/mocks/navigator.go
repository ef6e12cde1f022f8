package mocks

import (
	"context"
	"sync"
)

// MockNavigator implements authform.Navigator for testing
type MockNavigator struct {
	mu    sync.Mutex
	paths []string
}

// NavigateTo implements the authform.Navigator interface
func (m *MockNavigator) NavigateTo(_ context.Context, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths = append(m.paths, path)
}

// Paths returns every path navigated to, in order.
func (m *MockNavigator) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.paths))
	copy(out, m.paths)
	return out
}
