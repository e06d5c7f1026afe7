package testhelper

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

// Password is the plain-text password of every seeded user.
const Password = "password123"

var passwordHash = sync.OnceValue(func() string {
	h, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
})

// UniqueEmail returns a fresh identity that will not collide with other
// tests sharing the database.
func UniqueEmail(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8] + "@example.com"
}

// UniqueTag returns a category name unique to the calling test.
func UniqueTag(prefix string) string {
	return prefix + uuid.NewString()[:8]
}

// SeedUser inserts a user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	first := "Test"
	u := domain.User{
		Email:        UniqueEmail("user"),
		PasswordHash: passwordHash(),
		FirstName:    &first,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (email, password_hash, first_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.Email, u.PasswordHash, u.FirstName, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedFriend records friend as a friend of user.
func SeedFriend(t *testing.T, pool *pgxpool.Pool, user, friend string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_friends (user_email, friend_email) VALUES ($1, $2)`, user, friend)
	if err != nil {
		t.Fatalf("testhelper: SeedFriend: %v", err)
	}
}

// SeedPoll inserts a poll with one option per text. Categories are derived
// from the question. createdAt orders listings; zero means now.
func SeedPoll(t *testing.T, pool *pgxpool.Pool, owner, question string, privacy domain.Privacy, createdAt time.Time, options ...string) *domain.Poll {
	t.Helper()
	ctx := context.Background()

	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	if len(options) == 0 {
		options = []string{"yes", "no"}
	}

	opts := make([]domain.Option, len(options))
	for i, text := range options {
		opts[i] = domain.Option{Text: text}
	}
	p := domain.NewPoll(owner, question, nil, privacy, opts, createdAt.UTC().Truncate(time.Microsecond))

	_, err := pool.Exec(ctx,
		`INSERT INTO polls (id, owner, question, poll_hidden, results_hidden, allowed_viewers, categories, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		p.ID, p.Owner, p.Question, p.Privacy.PollHidden, p.Privacy.ResultsHidden,
		p.Privacy.AllowedViewers, p.Categories, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPoll insert poll: %v", err)
	}

	for _, o := range p.Options {
		_, err := pool.Exec(ctx,
			`INSERT INTO poll_options (id, poll_id, position, text) VALUES ($1, $2, $3, $4)`,
			o.ID, o.PollID, o.Position, o.Text,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedPoll insert option: %v", err)
		}
	}
	return p
}

// SeedVote records voter's ballot for optionID.
func SeedVote(t *testing.T, pool *pgxpool.Pool, pollID, optionID uuid.UUID, voter string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO votes (poll_id, option_id, voter) VALUES ($1, $2, $3)`, pollID, optionID, voter)
	if err != nil {
		t.Fatalf("testhelper: SeedVote: %v", err)
	}
}
