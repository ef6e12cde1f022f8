// Package authform implements the sign-in and sign-up form: selecting the
// validation schema for a mode and driving a submission through
// authentication, notification and navigation.
//
// The form never talks to a network or a store directly. Authentication,
// notifications and navigation are capabilities injected through Deps, so
// the same flow runs behind the HTTP handlers in package api and in tests.
package authform
