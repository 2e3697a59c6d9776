package auth

import (
	"fmt"
	"regexp"
	"strings"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// FieldError is a validation failure on one credential field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every failing field, in form order.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// For returns the message for field, or "".
func (v ValidationErrors) For(field string) string {
	for _, e := range v {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Credentials is what the login and sign-up forms collect.
type Credentials struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// ValidateLogin checks email and password.
func ValidateLogin(c Credentials) error {
	return validate(c, false)
}

// ValidateSignUp additionally requires a name and a matching confirmation.
func ValidateSignUp(c Credentials) error {
	return validate(c, true)
}

func validate(c Credentials, signUp bool) error {
	var errs ValidationErrors

	if signUp && strings.TrimSpace(c.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}

	switch {
	case strings.TrimSpace(c.Email) == "":
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	case !emailPattern.MatchString(c.Email):
		errs = append(errs, FieldError{Field: "email", Message: "Email is invalid"})
	}

	switch {
	case c.Password == "":
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	case len(c.Password) < MinPasswordLength:
		errs = append(errs, FieldError{Field: "password",
			Message: fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)})
	}

	if signUp && c.Password != c.ConfirmPassword {
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "Passwords do not match"})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
