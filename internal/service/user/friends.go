package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

// AddFriend adds email to the caller's friend list. Adding an existing
// friend is a no-op that returns the original entry.
func (s *Service) AddFriend(ctx context.Context, email string) (*domain.Friend, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	email, err := validIdentity("email", email)
	if err != nil {
		return nil, err
	}
	if email == caller {
		return nil, domain.NewValidationError("email", "cannot add yourself")
	}

	exists, err := s.users.Exists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user.AddFriend: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}

	friend, err := s.users.AddFriend(ctx, caller, email)
	if err != nil {
		return nil, fmt.Errorf("user.AddFriend: %w", err)
	}

	s.log.InfoContext(ctx, "friend added",
		slog.String("email", caller),
		slog.String("friend", email),
	)
	return friend, nil
}

// RemoveFriend removes email from the caller's friend list.
func (s *Service) RemoveFriend(ctx context.Context, email string) error {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	email, err := validIdentity("email", email)
	if err != nil {
		return err
	}

	if err := s.users.RemoveFriend(ctx, caller, email); err != nil {
		return fmt.Errorf("user.RemoveFriend: %w", err)
	}
	return nil
}

// ListFriends returns the caller's friend list, newest first.
func (s *Service) ListFriends(ctx context.Context) ([]domain.Friend, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	friends, err := s.users.ListFriends(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("user.ListFriends: %w", err)
	}
	return friends, nil
}
