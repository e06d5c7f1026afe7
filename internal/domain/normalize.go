package domain

import (
	"regexp"
	"strings"
)

// MaxEmailLength is the maximum length of a user identity.
const MaxEmailLength = 64

var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&’*+/=?^_`{|}~-]+@[a-zA-Z0-9-]+(?:\\.[a-zA-Z0-9-]+)*$")

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// Identities are compared case-insensitively, so every lookup goes through it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks an already normalized identity. It returns a
// FieldError for the given field name, or nil.
func ValidateEmail(field, email string) *FieldError {
	switch {
	case email == "":
		return &FieldError{Field: field, Message: "required"}
	case len(email) > MaxEmailLength:
		return &FieldError{Field: field, Message: "max 64 characters"}
	case !emailPattern.MatchString(email):
		return &FieldError{Field: field, Message: "invalid format"}
	}
	return nil
}

// TrimOrNil trims whitespace. Returns nil if the result is empty.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
)

// ValidatePassword checks password length in bytes.
func ValidatePassword(field, password string) *FieldError {
	switch {
	case password == "":
		return &FieldError{Field: field, Message: "required"}
	case len(password) < minPasswordLength:
		return &FieldError{Field: field, Message: "min 8 characters"}
	case len(password) > maxPasswordLength:
		return &FieldError{Field: field, Message: "max 72 bytes"}
	}
	return nil
}
