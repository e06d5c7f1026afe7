// Package analytics implements the aggregate queries behind interest
// comparison, search and category suggestions.
package analytics

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/polls-backend/internal/adapter/postgres"
	"github.com/heartmarshall/polls-backend/internal/domain"
)

// Repo runs read-only aggregations over the whole poll corpus.
type Repo struct {
	db postgres.Querier
}

// New creates a new analytics repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Interest comparison
// ---------------------------------------------------------------------------

// VotedTotal counts the polls voter has voted on.
func (r *Repo) VotedTotal(ctx context.Context, voter string) (int, error) {
	return r.count(ctx, postgres.Psql.Select("count(*)").From("votes").Where(sq.Eq{"voter": voter}))
}

// AuthoredTotal counts the polls owned by owner.
func (r *Repo) AuthoredTotal(ctx context.Context, owner string) (int, error) {
	return r.count(ctx, postgres.Psql.Select("count(*)").From("polls").Where(sq.Eq{"owner": owner}))
}

// CategoryOverlaps aggregates, per category, how subject and viewer voted on
// polls carrying it. Only polls viewer may open count, and only categories
// where at least one of them voted are returned.
func (r *Repo) CategoryOverlaps(ctx context.Context, subject, viewer string) ([]domain.CategoryOverlap, error) {
	sql, args, err := overlapQuery(subject, viewer).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build overlap query: %w", err)
	}

	var rows []overlapRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("category overlaps: %w", err)
	}

	out := make([]domain.CategoryOverlap, len(rows))
	for i, row := range rows {
		out[i] = domain.CategoryOverlap{
			Category:     row.Category,
			SubjectVotes: row.SubjectVotes,
			ViewerVotes:  row.ViewerVotes,
			BothVoted:    row.BothVoted,
			SameOption:   row.SameOption,
		}
	}
	return out, nil
}

func overlapQuery(subject, viewer string) sq.SelectBuilder {
	return postgres.Psql.
		Select(
			"c.category",
			"count(sv.poll_id) AS subject_votes",
			"count(vv.poll_id) AS viewer_votes",
			"count(*) FILTER (WHERE sv.poll_id IS NOT NULL AND vv.poll_id IS NOT NULL) AS both_voted",
			"count(*) FILTER (WHERE sv.option_id = vv.option_id) AS same_option",
		).
		Prefix(`WITH sv AS (SELECT poll_id, option_id FROM votes WHERE voter = ?),
			vv AS (SELECT poll_id, option_id FROM votes WHERE voter = ?)`, subject, viewer).
		From("polls p").
		JoinClause("CROSS JOIN LATERAL unnest(p.categories) AS c(category)").
		LeftJoin("sv ON sv.poll_id = p.id").
		LeftJoin("vv ON vv.poll_id = p.id").
		Where("(sv.poll_id IS NOT NULL OR vv.poll_id IS NOT NULL)").
		Where(postgres.VisibleTo(viewer)).
		GroupBy("c.category")
}

// ---------------------------------------------------------------------------
// Search and suggestions
// ---------------------------------------------------------------------------

// Categories returns categories starting with prefix among polls viewer may
// open, most used first. An empty prefix matches every category.
func (r *Repo) Categories(ctx context.Context, viewer, prefix string, limit int) ([]domain.CategoryUsage, error) {
	b := postgres.Psql.
		Select("c.category", "count(*) AS uses").
		From("polls p").
		JoinClause("CROSS JOIN LATERAL unnest(p.categories) AS c(category)").
		Where(postgres.VisibleTo(viewer)).
		GroupBy("c.category").
		OrderBy("uses DESC", "c.category").
		Limit(uint64(limit))
	if prefix != "" {
		b = b.Where(sq.Expr("starts_with(c.category, ?)", prefix))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build categories query: %w", err)
	}

	var rows []categoryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	out := make([]domain.CategoryUsage, len(rows))
	for i, row := range rows {
		out[i] = domain.CategoryUsage{Category: row.Category, Count: row.Uses}
	}
	return out, nil
}

// Authors returns poll owners whose identity starts with prefix among polls
// viewer may open, most prolific first.
func (r *Repo) Authors(ctx context.Context, viewer, prefix string, limit int) ([]domain.SearchItem, error) {
	sql, args, err := postgres.Psql.
		Select("p.owner", "count(*) AS uses").
		From("polls p").
		Where(postgres.VisibleTo(viewer)).
		Where(sq.Expr("starts_with(p.owner, ?)", strings.ToLower(prefix))).
		GroupBy("p.owner").
		OrderBy("uses DESC", "p.owner").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build authors query: %w", err)
	}

	var rows []authorRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("search authors: %w", err)
	}

	out := make([]domain.SearchItem, len(rows))
	for i, row := range rows {
		out[i] = domain.SearchItem{Label: row.Owner, Value: row.Owner, Type: domain.SearchTypeUser, Count: row.Uses}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type overlapRow struct {
	Category     string `db:"category"`
	SubjectVotes int    `db:"subject_votes"`
	ViewerVotes  int    `db:"viewer_votes"`
	BothVoted    int    `db:"both_voted"`
	SameOption   int    `db:"same_option"`
}

type categoryRow struct {
	Category string `db:"category"`
	Uses     int    `db:"uses"`
}

type authorRow struct {
	Owner string `db:"owner"`
	Uses  int    `db:"uses"`
}

func (r *Repo) count(ctx context.Context, b sq.SelectBuilder) (int, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
