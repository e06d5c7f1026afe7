package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/polls-backend/internal/auth"
	"github.com/heartmarshall/polls-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// tokenManager defines the session token operations needed by auth service.
type tokenManager interface {
	GenerateToken(id auth.Identity) (string, time.Time, error)
	ValidateToken(token string) (auth.Identity, error)
}

// passwordHasher defines the password hashing operations needed by auth service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Check(hash, password string) error
}

// Service implements signup, login and session operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenManager
	hasher passwordHasher
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenManager,
	hasher passwordHasher,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}

// issueSession signs a token for user.
func (s *Service) issueSession(user *domain.User) (*domain.Session, error) {
	token, expiresAt, err := s.tokens.GenerateToken(auth.Identity{Email: user.Email, Admin: user.IsAdmin})
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &domain.Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
