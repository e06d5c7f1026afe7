// Package user implements user and friend persistence on PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/polls-backend/internal/adapter/postgres"
	"github.com/heartmarshall/polls-backend/internal/domain"
)

const userColumns = `email, password_hash, first_name, last_name, avatar_url, is_admin, created_at, updated_at`

// Repo provides user and friend persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

// GetByEmail returns the user with the given identity.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// GetByEmails returns the users that exist among emails, in no particular order.
func (r *Repo) GetByEmails(ctx context.Context, emails []string) ([]domain.User, error) {
	if len(emails) == 0 {
		return []domain.User{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []userRow
	if err := pgxscan.Select(ctx, q, &rows, `SELECT `+userColumns+` FROM users WHERE email = ANY($1::text[])`, emails); err != nil {
		return nil, fmt.Errorf("get users by emails: %w", err)
	}

	out := make([]domain.User, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Exists reports whether a user with the given identity exists.
func (r *Repo) Exists(ctx context.Context, email string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "user", email)
	}
	return exists, nil
}

// Create inserts u and returns the stored row. A taken email yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanUser(q.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, first_name, last_name, avatar_url, is_admin, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		 RETURNING `+userColumns,
		u.Email, u.PasswordHash, u.FirstName, u.LastName, u.AvatarURL, u.IsAdmin, u.CreatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, email string, params domain.UserUpdateParams) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx,
		`UPDATE users SET
			password_hash = COALESCE($2, password_hash),
			first_name    = COALESCE($3, first_name),
			last_name     = COALESCE($4, last_name),
			avatar_url    = COALESCE($5, avatar_url),
			updated_at    = now()
		 WHERE email = $1
		 RETURNING `+userColumns,
		email, params.PasswordHash, params.FirstName, params.LastName, params.AvatarURL,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// Delete removes the user and their friend list. Polls, votes and comments
// reference users weakly and are kept.
func (r *Repo) Delete(ctx context.Context, email string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE email = $1`, email)
	if err != nil {
		return postgres.MapError(err, "user", email)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	return nil
}

// SetAdmin grants the admin flag. It reports false when the user does not
// exist or is already an admin.
func (r *Repo) SetAdmin(ctx context.Context, email string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET is_admin = true, updated_at = now() WHERE email = $1 AND NOT is_admin`, email)
	if err != nil {
		return false, postgres.MapError(err, "user", email)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Friends
// ---------------------------------------------------------------------------

// AddFriend records friend in user's friend list. Adding an existing friend
// returns the original edge.
func (r *Repo) AddFriend(ctx context.Context, user, friend string) (*domain.Friend, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var createdAt time.Time
	err := q.QueryRow(ctx,
		`INSERT INTO user_friends (user_email, friend_email) VALUES ($1, $2)
		 ON CONFLICT (user_email, friend_email) DO UPDATE SET friend_email = EXCLUDED.friend_email
		 RETURNING created_at`,
		user, friend,
	).Scan(&createdAt)
	if err != nil {
		return nil, postgres.MapError(err, "friend", friend)
	}
	return &domain.Friend{Email: friend, CreatedAt: createdAt}, nil
}

// RemoveFriend deletes friend from user's friend list.
func (r *Repo) RemoveFriend(ctx context.Context, user, friend string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM user_friends WHERE user_email = $1 AND friend_email = $2`, user, friend)
	if err != nil {
		return postgres.MapError(err, "friend", friend)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("friend %s: %w", friend, domain.ErrNotFound)
	}
	return nil
}

// ListFriends returns user's friends, most recently added first.
func (r *Repo) ListFriends(ctx context.Context, user string) ([]domain.Friend, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []friendRow
	err := pgxscan.Select(ctx, q, &rows,
		`SELECT friend_email, created_at FROM user_friends WHERE user_email = $1 ORDER BY created_at DESC, friend_email`, user)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}

	out := make([]domain.Friend, len(rows))
	for i, row := range rows {
		out[i] = domain.Friend{Email: row.FriendEmail, CreatedAt: row.CreatedAt}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type userRow struct {
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    *string   `db:"first_name"`
	LastName     *string   `db:"last_name"`
	AvatarURL    *string   `db:"avatar_url"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		AvatarURL:    r.AvatarURL,
		IsAdmin:      r.IsAdmin,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type friendRow struct {
	FriendEmail string    `db:"friend_email"`
	CreatedAt   time.Time `db:"created_at"`
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var r userRow
	if err := row.Scan(&r.Email, &r.PasswordHash, &r.FirstName, &r.LastName, &r.AvatarURL, &r.IsAdmin, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	u := r.toDomain()
	return &u, nil
}
