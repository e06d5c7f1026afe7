package postgres

import (
	sq "github.com/Masterminds/squirrel"
)

// Psql is the squirrel builder configured for PostgreSQL placeholders.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NotHiddenOrAllowed matches polls of table alias p that are public or
// allow-list viewer.
func NotHiddenOrAllowed(viewer string) sq.Sqlizer {
	return sq.Or{
		sq.Expr("NOT p.poll_hidden"),
		sq.Expr("? = ANY(p.allowed_viewers)", viewer),
	}
}

// VisibleTo matches polls of table alias p that viewer may open: public,
// allow-listed or owned.
func VisibleTo(viewer string) sq.Sqlizer {
	return sq.Or{
		sq.Expr("NOT p.poll_hidden"),
		sq.Eq{"p.owner": viewer},
		sq.Expr("? = ANY(p.allowed_viewers)", viewer),
	}
}
