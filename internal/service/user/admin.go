package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

// GrantAdmin gives the admin flag to another user (admin only). It reports
// whether the flag changed.
func (s *Service) GrantAdmin(ctx context.Context, email string) (bool, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return false, domain.ErrForbidden
	}
	email, err := validIdentity("email", email)
	if err != nil {
		return false, err
	}

	exists, err := s.users.Exists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("user.GrantAdmin: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}

	changed, err := s.users.SetAdmin(ctx, email)
	if err != nil {
		return false, fmt.Errorf("user.GrantAdmin: %w", err)
	}

	s.log.InfoContext(ctx, "admin granted",
		slog.String("email", email),
		slog.String("by", caller),
		slog.Bool("changed", changed),
	)
	return changed, nil
}
