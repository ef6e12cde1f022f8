// Package events lets the auth form publish the outcome of each submission
// without knowing who consumes it.
//
// The primary components are:
// - SubmissionEvent: the resolved outcome of one form submission
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
