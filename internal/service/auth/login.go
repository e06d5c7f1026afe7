package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/polls-backend/internal/auth"
	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

// Login authenticates a user with email + password.
// Returns ErrUnauthorized if the email is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*domain.Session, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := s.hasher.Check(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	session, err := s.issueSession(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("email", user.Email))
	return session, nil
}

// Me returns the current user with a freshly issued token.
func (s *Service) Me(ctx context.Context) (*domain.Session, error) {
	email, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Account deleted while the token was still valid.
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me get user: %w", err)
	}

	session, err := s.issueSession(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return session, nil
}

// ValidateToken verifies a session token and returns its identity.
func (s *Service) ValidateToken(_ context.Context, token string) (auth.Identity, error) {
	id, err := s.tokens.ValidateToken(token)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return id, nil
}
