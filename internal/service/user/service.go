package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Exists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, email string, params domain.UserUpdateParams) (*domain.User, error)
	Delete(ctx context.Context, email string) error
	AddFriend(ctx context.Context, user, friend string) (*domain.Friend, error)
	RemoveFriend(ctx context.Context, user, friend string) error
	ListFriends(ctx context.Context, user string) ([]domain.Friend, error)
	SetAdmin(ctx context.Context, email string) (bool, error)
}

// passwordHasher defines the password hashing needed by user service.
type passwordHasher interface {
	Hash(password string) (string, error)
}

// Service implements profile and friend operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	hasher passwordHasher
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, hasher passwordHasher) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		hasher: hasher,
	}
}

// canManage reports whether the caller may modify target's account.
func canManage(ctx context.Context, caller, target string) bool {
	return caller == target || ctxutil.IsAdminCtx(ctx)
}
