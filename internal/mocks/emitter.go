package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/mocksy/internal/events"
)

// MockEventEmitter implements events.EventEmitter for testing
type MockEventEmitter struct {
	// Err is returned from EmitEvent
	Err error

	mu     sync.Mutex
	events []*events.SubmissionEvent
}

// EmitEvent implements the events.EventEmitter interface
func (m *MockEventEmitter) EmitEvent(_ context.Context, event *events.SubmissionEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.Err
}

// Events returns the emitted events in order.
func (m *MockEventEmitter) Events() []*events.SubmissionEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*events.SubmissionEvent, len(m.events))
	copy(out, m.events)
	return out
}
