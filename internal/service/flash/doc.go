// Package flash carries one-shot user notifications across a redirect.
//
// A notification is encoded as a short-lived HMAC-SHA256 JWT and stored in a
// cookie; the next page render pops it, verifies it, and clears the cookie.
// Signing keeps clients from forging messages that appear to come from the
// application.
package flash
