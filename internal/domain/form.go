package domain

// FormValues holds what the user typed into the auth form. The zero value is
// the form's initial state.
type FormValues struct {
	Name     string `json:"name"     form:"name"`
	Email    string `json:"email"    form:"email"`
	Password string `json:"-"        form:"password"`
}

// Redacted returns a copy of v with the password cleared, safe to keep or
// render back into a page.
func (v FormValues) Redacted() FormValues {
	v.Password = ""
	return v
}
