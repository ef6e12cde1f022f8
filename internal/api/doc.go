// Package api handles incoming HTTP requests for the auth pages: it renders
// the sign-in and sign-up forms, decodes submissions, and plays the
// notification and navigation capabilities the auth form calls, translating
// them into flash cookies and redirects.
package api
