// Package seeder fills a database with demo users, polls, votes and
// comments for local development.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

// UserRepo is the user persistence consumed by the pipeline.
// Implemented by user.Repo.
type UserRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	AddFriend(ctx context.Context, user, friend string) (*domain.Friend, error)
}

// PollRepo is the poll persistence consumed by the pipeline.
// Implemented by poll.Repo.
type PollRepo interface {
	Create(ctx context.Context, p *domain.Poll) error
	CastVote(ctx context.Context, pollID, optionID uuid.UUID, voter string) (*domain.Ballot, error)
}

// CommentRepo is the comment persistence consumed by the pipeline.
// Implemented by comment.Repo.
type CommentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
}

// PasswordHasher hashes the shared demo password once per run.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Repos groups the pipeline's storage dependencies.
type Repos struct {
	Users    UserRepo
	Polls    PollRepo
	Comments CommentRepo
}
