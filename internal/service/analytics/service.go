// Package analytics compares users' voting interests and serves search.
package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

// statsRepo defines the aggregate queries needed by analytics service.
type statsRepo interface {
	VotedTotal(ctx context.Context, voter string) (int, error)
	AuthoredTotal(ctx context.Context, owner string) (int, error)
	CategoryOverlaps(ctx context.Context, subject, viewer string) ([]domain.CategoryOverlap, error)
	Categories(ctx context.Context, viewer, prefix string, limit int) ([]domain.CategoryUsage, error)
	Authors(ctx context.Context, viewer, prefix string, limit int) ([]domain.SearchItem, error)
}

// userRepo defines the user lookup needed by analytics service.
type userRepo interface {
	Exists(ctx context.Context, email string) (bool, error)
}

// reportCache stores computed contrast reports.
type reportCache interface {
	Get(ctx context.Context, subject, viewer string) (*domain.ContrastReport, bool, error)
	Set(ctx context.Context, subject, viewer string, r *domain.ContrastReport) error
}

// Service implements interest comparison and search.
type Service struct {
	log   *slog.Logger
	stats statsRepo
	users userRepo
	cache reportCache
}

// NewService creates a new analytics service instance. cache may be nil.
func NewService(logger *slog.Logger, stats statsRepo, users userRepo, cache reportCache) *Service {
	return &Service{
		log:   logger.With("service", "analytics"),
		stats: stats,
		users: users,
		cache: cache,
	}
}

// CompareInterests contrasts subject's voting interests with the caller's.
// The three aggregates run concurrently; a cached report is returned when
// one is available.
func (s *Service) CompareInterests(ctx context.Context, subject string) (*domain.ContrastReport, error) {
	viewer, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	subject = domain.NormalizeEmail(subject)
	if fe := domain.ValidateEmail("subject", subject); fe != nil {
		return nil, domain.NewValidationError(fe.Field, fe.Message)
	}

	exists, err := s.users.Exists(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("analytics.CompareInterests: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", subject, domain.ErrNotFound)
	}

	if s.cache != nil {
		cached, hit, err := s.cache.Get(ctx, subject, viewer)
		if err != nil {
			s.log.WarnContext(ctx, "report cache read failed", slog.String("error", err.Error()))
		} else if hit {
			return cached, nil
		}
	}

	var (
		voted, authored int
		overlaps        []domain.CategoryOverlap
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		voted, err = s.stats.VotedTotal(gctx, subject)
		return err
	})
	g.Go(func() error {
		var err error
		authored, err = s.stats.AuthoredTotal(gctx, subject)
		return err
	})
	g.Go(func() error {
		var err error
		overlaps, err = s.stats.CategoryOverlaps(gctx, subject, viewer)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics.CompareInterests: %w", err)
	}

	report := domain.BuildContrastReport(subject, voted, authored, overlaps)

	if s.cache != nil {
		if err := s.cache.Set(ctx, subject, viewer, &report); err != nil {
			s.log.WarnContext(ctx, "report cache write failed", slog.String("error", err.Error()))
		}
	}
	return &report, nil
}

// Search returns poll authors and categories starting with term, users
// first. Each facet holds at most domain.SearchFacetSize entries. A blank
// term yields an empty result.
func (s *Service) Search(ctx context.Context, term string) ([]domain.SearchItem, error) {
	viewer, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.SearchItem{}, nil
	}

	var (
		authors    []domain.SearchItem
		categories []domain.CategoryUsage
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		authors, err = s.stats.Authors(gctx, viewer, term, domain.SearchFacetSize)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.stats.Categories(gctx, viewer, strings.TrimPrefix(term, "#"), domain.SearchFacetSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics.Search: %w", err)
	}

	out := make([]domain.SearchItem, 0, len(authors)+len(categories))
	out = append(out, authors...)
	for _, c := range categories {
		out = append(out, domain.SearchItem{
			Label: c.Category,
			Value: c.Category,
			Type:  domain.SearchTypeCategory,
			Count: c.Count,
		})
	}
	return out, nil
}
