package domain

import "time"

// User represents an application user. Email is the immutable identity key.
type User struct {
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	AvatarURL    *string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdateParams holds the mutable profile fields. nil = don't change.
type UserUpdateParams struct {
	PasswordHash *string
	FirstName    *string
	LastName     *string
	AvatarURL    *string
}

// Friend is a directed friendship edge. The friend identity is a weak
// reference and may outlive the referenced user.
type Friend struct {
	Email     string
	CreatedAt time.Time
}

// Session is an authenticated user together with a signed access token.
type Session struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}
