// Package comment implements poll comment persistence on PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/polls-backend/internal/adapter/postgres"
	"github.com/heartmarshall/polls-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends c to its poll. A missing poll yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var createdAt time.Time
	err := q.QueryRow(ctx,
		`INSERT INTO comments (id, poll_id, author, body) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		c.ID, c.PollID, c.Author, c.Text,
	).Scan(&createdAt)
	if err != nil {
		return nil, postgres.MapError(err, "poll", c.PollID.String())
	}

	out := *c
	out.CreatedAt = createdAt
	return &out, nil
}

// ListByPoll returns one newest-first page of the poll's comments together
// with the poll's total comment count.
func (r *Repo) ListByPoll(ctx context.Context, pollID uuid.UUID, limit, offset int) ([]domain.Comment, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM comments WHERE poll_id = $1`, pollID).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "poll", pollID.String())
	}

	var rows []commentRow
	err := pgxscan.Select(ctx, q, &rows,
		`SELECT id, poll_id, author, body, created_at FROM comments
		 WHERE poll_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		pollID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}

	out := make([]domain.Comment, len(rows))
	for i, row := range rows {
		out[i] = domain.Comment{ID: row.ID, PollID: row.PollID, Author: row.Author, Text: row.Body, CreatedAt: row.CreatedAt}
	}
	return out, total, nil
}

type commentRow struct {
	ID        uuid.UUID `db:"id"`
	PollID    uuid.UUID `db:"poll_id"`
	Author    string    `db:"author"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}
