package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

// Signup creates a password account and opens a session for it.
// Returns ErrAlreadyExists if the email is taken.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*domain.Session, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.FirstName = domain.TrimOrNil(input.FirstName)
	input.LastName = domain.TrimOrNil(input.LastName)
	input.AvatarURL = domain.TrimOrNil(input.AvatarURL)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		AvatarURL:    input.AvatarURL,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Signup: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Signup create user: %w", err)
	}

	session, err := s.issueSession(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up", slog.String("email", user.Email))
	return session, nil
}
