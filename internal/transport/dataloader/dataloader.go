// Package dataloader provides per-request DataLoaders that batch author
// profile lookups of REST responses into single SQL calls. Loaders call
// the user repository directly, bypassing the service layer; profiles are
// public, so no per-viewer filtering applies.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByEmails(ctx context.Context, emails []string) ([]domain.User, error)
}

// Loaders contains the per-request DataLoaders. Created per request via
// NewLoaders.
type Loaders struct {
	UserByEmail *dataloader.Loader[string, *domain.User]
}

// NewLoaders creates a new set of DataLoaders backed by the user repository.
// Must be called per request (loaders cache results within a single request).
func NewLoaders(users userRepo) *Loaders {
	return &Loaders{
		UserByEmail: dataloader.NewBatchedLoader(
			newUsersBatchFn(users),
			dataloader.WithWait[string, *domain.User](wait),
			dataloader.WithBatchCapacity[string, *domain.User](maxBatch),
		),
	}
}

// newUsersBatchFn resolves emails to users. Unknown identities resolve to
// nil: owners, voters and authors are weak references.
func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[string, *domain.User] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByEmails(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.User], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.User]{Error: err}
			}
			return results
		}

		byEmail := make(map[string]*domain.User, len(users))
		for i := range users {
			byEmail[users[i].Email] = &users[i]
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.User]{Data: byEmail[key]}
		}
		return results
	}
}

// LoadUsers resolves a set of identities through the request's loader.
// Missing users are absent from the result.
func (l *Loaders) LoadUsers(ctx context.Context, emails []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User, len(emails))
	if len(emails) == 0 {
		return out, nil
	}

	users, errs := l.UserByEmail.LoadMany(ctx, emails)()
	for i, email := range emails {
		if i < len(errs) && errs[i] != nil {
			return nil, errs[i]
		}
		if users[i] != nil {
			out[email] = users[i]
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
