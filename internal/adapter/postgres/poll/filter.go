package poll

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/polls-backend/internal/adapter/postgres"
	"github.com/heartmarshall/polls-backend/internal/domain"
)

const pollColumns = `p.id, p.owner, p.question, p.image, p.poll_hidden, p.results_hidden,
	p.allowed_viewers, p.categories, p.created_at, p.updated_at,
	(SELECT count(*) FROM comments c WHERE c.poll_id = p.id) AS comment_count`

// listQuery renders the enumeration predicate of f as SQL. It mirrors
// domain.PollFilter.Matches.
func listQuery(f domain.PollFilter) (string, []any, error) {
	b := postgres.Psql.Select(pollColumns).From("polls p")

	switch f.Mode {
	case domain.ListModeOwn:
		b = b.Where(sq.Eq{"p.owner": f.Viewer})
	case domain.ListModeFriends:
		b = b.Where(postgres.VisibleTo(f.Viewer))
		if len(f.Authors) == 0 {
			b = b.Where(sq.Or{
				sq.Eq{"p.owner": f.Viewer},
				sq.Expr("p.owner IN (SELECT friend_email FROM user_friends WHERE user_email = ?)", f.Viewer),
			})
		}
	case domain.ListModeExplore:
		b = b.Where(postgres.NotHiddenOrAllowed(f.Viewer))
	default:
		return "", nil, fmt.Errorf("list mode %q: %w", f.Mode, domain.ErrValidation)
	}

	if len(f.Authors) > 0 {
		b = b.Where(sq.Expr("p.owner = ANY(?::text[])", f.Authors))
	}
	if len(f.Categories) > 0 {
		b = b.Where(sq.Expr(
			"EXISTS (SELECT 1 FROM unnest(p.categories) AS c(name), unnest(?::text[]) AS f(prefix) WHERE starts_with(c.name, f.prefix))",
			f.Categories,
		))
	}

	b = b.OrderBy("p.created_at DESC", "p.id DESC")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	return b.ToSql()
}
