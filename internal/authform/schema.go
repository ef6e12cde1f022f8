package authform

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/mocksy/internal/domain"
)

// validate is shared by every schema; it is safe for concurrent use.
var validate = validator.New()

// Field names used by the auth form.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// FieldRule describes one form field: how it is rendered and the validator
// tag its value must satisfy. An empty Tag leaves the field unconstrained.
type FieldRule struct {
	Field       string
	Label       string
	Placeholder string
	// InputType is the HTML input type hint ("email", "password"), empty for text.
	InputType string
	Tag       string
}

// Schema is the ordered set of field rules for one mode.
type Schema struct {
	mode  domain.Mode
	rules []FieldRule
}

var (
	nameRule = FieldRule{
		Field:       FieldName,
		Label:       "Name",
		Placeholder: "Your name",
		Tag:         "required,min=3",
	}
	emailRule = FieldRule{
		Field:       FieldEmail,
		Label:       "Email",
		Placeholder: "you@example.com",
		InputType:   "email",
		Tag:         "required,email",
	}
	passwordRule = FieldRule{
		Field:       FieldPassword,
		Label:       "Password",
		Placeholder: "••••••••",
		InputType:   "password",
		Tag:         "required,min=3",
	}
)

// SelectSchema returns the validation schema for mode. Name is required only
// when signing up. It panics if mode is not a known mode; use
// domain.ParseMode on untrusted input first.
func SelectSchema(mode domain.Mode) Schema {
	switch mode {
	case domain.ModeSignUp:
		return Schema{mode: mode, rules: []FieldRule{nameRule, emailRule, passwordRule}}
	case domain.ModeSignIn:
		return Schema{mode: mode, rules: []FieldRule{emailRule, passwordRule}}
	default:
		panic(fmt.Sprintf("authform: no schema for mode %q", string(mode)))
	}
}

// Mode returns the mode the schema was selected for.
func (s Schema) Mode() domain.Mode {
	return s.mode
}

// Fields returns the fields to render, in order.
func (s Schema) Fields() []FieldRule {
	out := make([]FieldRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Rule returns the rule for the named field, if the schema has one.
func (s Schema) Rule(field string) (FieldRule, bool) {
	for _, r := range s.rules {
		if r.Field == field {
			return r, true
		}
	}
	return FieldRule{}, false
}

// Validate checks values against the schema. It returns nil or a
// *domain.ValidationError listing every failing field in schema order.
func (s Schema) Validate(values domain.FormValues) error {
	var fieldErrs []domain.FieldError
	for _, rule := range s.rules {
		if rule.Tag == "" {
			continue
		}
		err := validate.Var(fieldValue(values, rule.Field), rule.Tag)
		if err == nil {
			continue
		}

		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			// Only a malformed tag gets here.
			return fmt.Errorf("validate %s: %w", rule.Field, err)
		}
		for _, fe := range verrs {
			fieldErrs = append(fieldErrs, domain.FieldError{
				Field:   rule.Field,
				Tag:     fe.Tag(),
				Param:   fe.Param(),
				Message: tagMessage(fe.Tag(), fe.Param()),
			})
		}
	}

	if len(fieldErrs) > 0 {
		return &domain.ValidationError{Fields: fieldErrs}
	}
	return nil
}

func fieldValue(values domain.FormValues, field string) string {
	switch field {
	case FieldName:
		return values.Name
	case FieldEmail:
		return values.Email
	case FieldPassword:
		return values.Password
	default:
		return ""
	}
}

// tagMessage maps validation tags to user-facing messages.
func tagMessage(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", param)
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
