package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

// CheckEmailAvailable reports whether no account uses email. It does not
// require authentication.
func (s *Service) CheckEmailAvailable(ctx context.Context, email string) (bool, error) {
	email, err := validIdentity("email", email)
	if err != nil {
		return false, err
	}

	exists, err := s.users.Exists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("user.CheckEmailAvailable: %w", err)
	}
	return !exists, nil
}

// GetProfile returns the profile of the user with the given email.
func (s *Service) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	email, err := validIdentity("email", email)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the profile of input.Email. Only the user
// themselves or an admin may do so; anyone else gets ErrNotFound.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Email = domain.NormalizeEmail(input.Email)
	input.FirstName = domain.TrimOrNil(input.FirstName)
	input.LastName = domain.TrimOrNil(input.LastName)
	input.AvatarURL = domain.TrimOrNil(input.AvatarURL)

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !canManage(ctx, caller, input.Email) {
		return nil, fmt.Errorf("user %s: %w", input.Email, domain.ErrNotFound)
	}

	params := domain.UserUpdateParams{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		AvatarURL: input.AvatarURL,
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateProfile: %w", err)
		}
		params.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, input.Email, params)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("email", input.Email),
		slog.String("by", caller),
		slog.Bool("password_changed", input.Password != nil),
	)
	return user, nil
}

// DeleteAccount removes a user. Polls, votes and comments they left stay.
func (s *Service) DeleteAccount(ctx context.Context, email string) error {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	email, err := validIdentity("email", email)
	if err != nil {
		return err
	}
	if !canManage(ctx, caller, email) {
		return fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}

	if err := s.users.Delete(ctx, email); err != nil {
		return fmt.Errorf("user.DeleteAccount: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted",
		slog.String("email", email),
		slog.String("by", caller),
	)
	return nil
}
