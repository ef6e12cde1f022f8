package domain

import "fmt"

// Routes the auth form renders on or navigates to.
const (
	RootPath   = "/"
	SignInPath = "/sign-in"
	SignUpPath = "/sign-up"
)

// Mode selects which variant of the auth form is active. It is fixed for the
// lifetime of one form instance.
type Mode string

// The two form modes.
const (
	ModeSignIn Mode = "sign-in"
	ModeSignUp Mode = "sign-up"
)

// Modes lists every known mode.
var Modes = []Mode{ModeSignIn, ModeSignUp}

// ParseMode converts s to a Mode, returning ErrInvalidMode for unknown values.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeSignIn, ModeSignUp:
		return true
	default:
		return false
	}
}

func (m Mode) String() string {
	return string(m)
}

// Path returns the route that renders the form in this mode.
func (m Mode) Path() string {
	switch m {
	case ModeSignIn:
		return SignInPath
	case ModeSignUp:
		return SignUpPath
	default:
		panic(fmt.Sprintf("domain: unknown mode %q", string(m)))
	}
}

// SubmitLabel is the text of the form's submit button.
func (m Mode) SubmitLabel() string {
	if m == ModeSignIn {
		return "Sign-in"
	}
	return "Create an Account"
}

// SwitchPrompt is the text shown next to the link to the other mode.
func (m Mode) SwitchPrompt() string {
	if m == ModeSignIn {
		return "No account yet?"
	}
	return "Have an account already?"
}

// SwitchLink returns the route and label of the link to the other mode.
func (m Mode) SwitchLink() (path, label string) {
	if m == ModeSignIn {
		return SignUpPath, "Sign up"
	}
	return SignInPath, "Sign in"
}
