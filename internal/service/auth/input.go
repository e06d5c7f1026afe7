package auth

import (
	"github.com/heartmarshall/polls-backend/internal/domain"
)

const (
	maxNameLength   = 100
	maxAvatarLength = 2048
)

// SignupInput holds parameters for the signup operation.
type SignupInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
	AvatarURL *string
}

// Validate validates the signup input. Email must already be normalized.
func (i SignupInput) Validate() error {
	var errs []domain.FieldError

	if fe := domain.ValidateEmail("email", i.Email); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := domain.ValidatePassword("password", i.Password); fe != nil {
		errs = append(errs, *fe)
	}
	if i.FirstName != nil && len(*i.FirstName) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if i.LastName != nil && len(*i.LastName) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}
	if i.AvatarURL != nil && len(*i.AvatarURL) > maxAvatarLength {
		errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
