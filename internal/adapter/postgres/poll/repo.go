// Package poll implements poll, option and vote persistence on PostgreSQL.
package poll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/polls-backend/internal/adapter/postgres"
	"github.com/heartmarshall/polls-backend/internal/domain"
)

// Repo provides poll persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new poll repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Polls
// ---------------------------------------------------------------------------

// Create inserts p and its options in one batch. Run it inside a
// transaction to make the insert atomic.
func (r *Repo) Create(ctx context.Context, p *domain.Poll) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := &pgx.Batch{}
	b.Queue(
		`INSERT INTO polls (id, owner, question, image, poll_hidden, results_hidden, allowed_viewers, categories, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Owner, p.Question, p.Image, p.Privacy.PollHidden, p.Privacy.ResultsHidden,
		nonNil(p.Privacy.AllowedViewers), nonNil(p.Categories), p.CreatedAt, p.UpdatedAt,
	)
	for _, o := range p.Options {
		b.Queue(
			`INSERT INTO poll_options (id, poll_id, position, text, description) VALUES ($1, $2, $3, $4, $5)`,
			o.ID, p.ID, o.Position, o.Text, o.Description,
		)
	}

	br := q.SendBatch(ctx, b)
	for range b.Len() {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return postgres.MapError(err, "poll", p.ID.String())
		}
	}
	if err := br.Close(); err != nil {
		return postgres.MapError(err, "poll", p.ID.String())
	}
	return nil
}

// GetByID returns the poll with its options, vote counts and voter previews.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row pollRow
	err := pgxscan.Get(ctx, q, &row, `SELECT `+pollColumns+` FROM polls p WHERE p.id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "poll", id.String())
	}

	polls, err := r.withOptions(ctx, q, []pollRow{row})
	if err != nil {
		return nil, err
	}
	return &polls[0], nil
}

// List returns the polls matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.PollFilter) ([]domain.Poll, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := listQuery(f)
	if err != nil {
		return nil, err
	}

	var rows []pollRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list polls: %w", err)
	}
	return r.withOptions(ctx, q, rows)
}

// Update applies the non-nil fields of params and returns the stored poll.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.PollUpdateParams) (*domain.Poll, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var (
		pollHidden, resultsHidden *bool
		allowed                   []string
	)
	if params.Privacy != nil {
		pollHidden = &params.Privacy.PollHidden
		resultsHidden = &params.Privacy.ResultsHidden
		allowed = nonNil(params.Privacy.AllowedViewers)
	}
	var categories []string
	if params.Question != nil {
		categories = nonNil(params.Categories)
	}

	tag, err := q.Exec(ctx,
		`UPDATE polls SET
			question        = COALESCE($2, question),
			categories      = COALESCE($3, categories),
			image           = COALESCE($4, image),
			poll_hidden     = COALESCE($5, poll_hidden),
			results_hidden  = COALESCE($6, results_hidden),
			allowed_viewers = COALESCE($7, allowed_viewers),
			updated_at      = now()
		 WHERE id = $1`,
		id, params.Question, categories, params.Image, pollHidden, resultsHidden, allowed,
	)
	if err != nil {
		return nil, postgres.MapError(err, "poll", id.String())
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("poll %s: %w", id, domain.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the poll with its options, votes and comments.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM polls WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "poll", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("poll %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Votes
// ---------------------------------------------------------------------------

const (
	castVoteSQL = `INSERT INTO votes (poll_id, option_id, voter)
		SELECT o.poll_id, o.id, $3 FROM poll_options o WHERE o.poll_id = $1 AND o.id = $2
		ON CONFLICT (poll_id, voter) DO NOTHING
		RETURNING created_at`

	optionExistsSQL = `SELECT EXISTS(SELECT 1 FROM poll_options WHERE poll_id = $1 AND id = $2)`
)

// CastVote records voter's ballot for optionID with one conditional insert.
// When nothing is written, a lookup tells domain.ErrAlreadyVoted (the option
// exists, so the voter already has a ballot on the poll) from
// domain.ErrNotFound.
func (r *Repo) CastVote(ctx context.Context, pollID, optionID uuid.UUID, voter string) (*domain.Ballot, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var createdAt time.Time
	err := q.QueryRow(ctx, castVoteSQL, pollID, optionID, voter).Scan(&createdAt)
	if err == nil {
		return &domain.Ballot{PollID: pollID, OptionID: optionID, Voter: voter, CreatedAt: createdAt}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "vote", pollID.String())
	}

	var exists bool
	if err := q.QueryRow(ctx, optionExistsSQL, pollID, optionID).Scan(&exists); err != nil {
		return nil, postgres.MapError(err, "vote", pollID.String())
	}
	if exists {
		return nil, fmt.Errorf("vote %s: %w", pollID, domain.ErrAlreadyVoted)
	}
	return nil, fmt.Errorf("option %s of poll %s: %w", optionID, pollID, domain.ErrNotFound)
}

// Ballots returns voter's ballots on the given polls keyed by poll id.
func (r *Repo) Ballots(ctx context.Context, voter string, pollIDs []uuid.UUID) (map[uuid.UUID]domain.Ballot, error) {
	out := make(map[uuid.UUID]domain.Ballot, len(pollIDs))
	if voter == "" || len(pollIDs) == 0 {
		return out, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []ballotRow
	err := pgxscan.Select(ctx, q, &rows,
		`SELECT poll_id, option_id, voter, created_at FROM votes WHERE voter = $1 AND poll_id = ANY($2::uuid[])`,
		voter, pollIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list ballots: %w", err)
	}

	for _, row := range rows {
		out[row.PollID] = domain.Ballot{PollID: row.PollID, OptionID: row.OptionID, Voter: row.Voter, CreatedAt: row.CreatedAt}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type pollRow struct {
	ID             uuid.UUID `db:"id"`
	Owner          string    `db:"owner"`
	Question       string    `db:"question"`
	Image          *string   `db:"image"`
	PollHidden     bool      `db:"poll_hidden"`
	ResultsHidden  bool      `db:"results_hidden"`
	AllowedViewers []string  `db:"allowed_viewers"`
	Categories     []string  `db:"categories"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
	CommentCount   int       `db:"comment_count"`
}

type optionRow struct {
	ID           uuid.UUID `db:"id"`
	PollID       uuid.UUID `db:"poll_id"`
	Position     int       `db:"position"`
	Text         string    `db:"text"`
	Description  *string   `db:"description"`
	VoteCount    int       `db:"vote_count"`
	RecentVoters []string  `db:"recent_voters"`
}

type ballotRow struct {
	PollID    uuid.UUID `db:"poll_id"`
	OptionID  uuid.UUID `db:"option_id"`
	Voter     string    `db:"voter"`
	CreatedAt time.Time `db:"created_at"`
}

const optionsSQL = `SELECT o.id, o.poll_id, o.position, o.text, o.description,
	(SELECT count(*) FROM votes v WHERE v.option_id = o.id) AS vote_count,
	ARRAY(
		SELECT v.voter FROM votes v WHERE v.option_id = o.id
		ORDER BY v.created_at DESC, v.voter
		LIMIT $2
	) AS recent_voters
FROM poll_options o
WHERE o.poll_id = ANY($1::uuid[])
ORDER BY o.poll_id, o.position`

// withOptions loads the options of all rows in one query and assembles
// domain polls in row order.
func (r *Repo) withOptions(ctx context.Context, q postgres.Querier, rows []pollRow) ([]domain.Poll, error) {
	polls := make([]domain.Poll, len(rows))
	if len(rows) == 0 {
		return polls, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	var opts []optionRow
	if err := pgxscan.Select(ctx, q, &opts, optionsSQL, ids, domain.PreviewSize); err != nil {
		return nil, fmt.Errorf("load poll options: %w", err)
	}

	byPoll := make(map[uuid.UUID][]domain.Option, len(rows))
	for _, o := range opts {
		byPoll[o.PollID] = append(byPoll[o.PollID], domain.Option{
			ID:           o.ID,
			PollID:       o.PollID,
			Position:     o.Position,
			Text:         o.Text,
			Description:  o.Description,
			VoteCount:    o.VoteCount,
			RecentVoters: nonNil(o.RecentVoters),
		})
	}

	for i, row := range rows {
		polls[i] = domain.Poll{
			ID:       row.ID,
			Owner:    row.Owner,
			Question: row.Question,
			Image:    row.Image,
			Privacy: domain.Privacy{
				PollHidden:     row.PollHidden,
				ResultsHidden:  row.ResultsHidden,
				AllowedViewers: nonNil(row.AllowedViewers),
			},
			Options:      byPoll[row.ID],
			Categories:   nonNil(row.Categories),
			CommentCount: row.CommentCount,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		}
	}
	return polls, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
