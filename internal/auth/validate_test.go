package auth

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		signUp bool
		creds  Credentials
		want   ValidationErrors
	}{
		{
			name:  "valid login",
			creds: Credentials{Email: "a@b.co", Password: "123456"},
		},
		{
			name:  "empty login",
			creds: Credentials{Email: "  "},
			want: ValidationErrors{
				{Field: "email", Message: "Email is required"},
				{Field: "password", Message: "Password is required"},
			},
		},
		{
			name:  "malformed email short password",
			creds: Credentials{Email: "a@b", Password: "12345"},
			want: ValidationErrors{
				{Field: "email", Message: "Email is invalid"},
				{Field: "password", Message: "Password must be at least 6 characters"},
			},
		},
		{
			name:  "login ignores name and confirmation",
			creds: Credentials{Email: "a@b.co", Password: "123456", ConfirmPassword: "other"},
		},
		{
			name:   "sign-up needs name and matching confirmation",
			signUp: true,
			creds:  Credentials{Email: "a@b.co", Password: "123456", ConfirmPassword: "654321"},
			want: ValidationErrors{
				{Field: "name", Message: "Name is required"},
				{Field: "confirmPassword", Message: "Passwords do not match"},
			},
		},
		{
			name:   "valid sign-up",
			signUp: true,
			creds:  Credentials{Name: "Ada", Email: "a@b.co", Password: "123456", ConfirmPassword: "123456"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validate := ValidateLogin
			if tt.signUp {
				validate = ValidateSignUp
			}
			err := validate(tt.creds)

			var got ValidationErrors
			if err != nil && !errors.As(err, &got) {
				t.Fatalf("unexpected error type %T", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("validation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	err := ValidationErrors{{Field: "email", Message: "Email is required"}, {Field: "password", Message: "Password is required"}}
	if got, want := err.Error(), "Email is required; Password is required"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
