// Package domain contains the core types of the auth form: the form mode,
// the submitted values, the routes the form navigates to, and the errors
// shared by the rest of the application. It has no dependency on any
// delivery mechanism.
package domain
