package user

import "github.com/heartmarshall/polls-backend/internal/domain"

const (
	maxNameLength   = 100
	maxAvatarLength = 2048
)

// UpdateProfileInput holds parameters for profile update operation.
// Optional fields are left unchanged when nil.
type UpdateProfileInput struct {
	Email     string
	Password  *string
	FirstName *string
	LastName  *string
	AvatarURL *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if fe := domain.ValidateEmail("email", i.Email); fe != nil {
		errs = append(errs, *fe)
	}
	if i.Password != nil {
		if fe := domain.ValidatePassword("password", *i.Password); fe != nil {
			errs = append(errs, *fe)
		}
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

// validIdentity normalizes email and checks its format.
func validIdentity(field, email string) (string, error) {
	email = domain.NormalizeEmail(email)
	if fe := domain.ValidateEmail(field, email); fe != nil {
		return "", domain.NewValidationError(fe.Field, fe.Message)
	}
	return email, nil
}
