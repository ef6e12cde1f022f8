// Package redact strips credentials and personal data from strings before
// they are logged. Authenticator errors are opaque to the auth form and may
// quote whatever the backend saw, including the submitted email or password.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; JWTs go first so the key rule does not eat
// half of one.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]*`),
		placeholder: RedactedJWTPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)[a-z][a-z0-9+.-]*://[^/@\s]+@`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(password|passwd|pwd)(\s*[=:]\s*|\s+)['"]?[^'"&\s]{3,}`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(api[_-]?key|token|secret)(\s*[=:]\s*|\s+)['"]?[A-Za-z0-9_\-.~+/]{8,}`),
		placeholder: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
		placeholder: RedactedEmailPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
