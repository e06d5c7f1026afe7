package seeder_test

import (
	"github.com/heartmarshall/polls-backend/internal/adapter/postgres/comment"
	"github.com/heartmarshall/polls-backend/internal/adapter/postgres/poll"
	"github.com/heartmarshall/polls-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/polls-backend/internal/app/seeder"
	"github.com/heartmarshall/polls-backend/internal/auth"
)

// Compile-time checks: the postgres repositories satisfy the pipeline contracts.
var (
	_ seeder.UserRepo       = (*user.Repo)(nil)
	_ seeder.PollRepo       = (*poll.Repo)(nil)
	_ seeder.CommentRepo    = (*comment.Repo)(nil)
	_ seeder.PasswordHasher = (*auth.Hasher)(nil)
)
