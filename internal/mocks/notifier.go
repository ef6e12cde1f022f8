package mocks

import (
	"context"
	"sync"
)

// Notification kinds recorded by MockNotifier.
const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification is one message recorded by MockNotifier.
type Notification struct {
	Kind    string
	Message string
}

// MockNotifier implements authform.Notifier for testing
type MockNotifier struct {
	mu            sync.Mutex
	notifications []Notification
}

// NotifySuccess implements the authform.Notifier interface
func (m *MockNotifier) NotifySuccess(_ context.Context, message string) {
	m.record(NotificationSuccess, message)
}

// NotifyError implements the authform.Notifier interface
func (m *MockNotifier) NotifyError(_ context.Context, message string) {
	m.record(NotificationError, message)
}

func (m *MockNotifier) record(kind, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, Notification{Kind: kind, Message: message})
}

// Notifications returns a copy of everything recorded so far.
func (m *MockNotifier) Notifications() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Notification, len(m.notifications))
	copy(out, m.notifications)
	return out
}
