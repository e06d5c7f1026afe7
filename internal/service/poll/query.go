package poll

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

// GetPoll returns a poll projected for the caller. Polls the caller may
// not see are reported as not found.
func (s *Service) GetPoll(ctx context.Context, id uuid.UUID) (*domain.PollView, error) {
	viewer, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.polls.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("poll.GetPoll: %w", err)
	}
	if !domain.CanView(p, viewer) {
		return nil, fmt.Errorf("poll %s: %w", id, domain.ErrNotFound)
	}

	views, err := s.project(ctx, viewer, []domain.Poll{*p})
	if err != nil {
		return nil, fmt.Errorf("poll.GetPoll: %w", err)
	}
	return &views[0], nil
}

// ListPolls enumerates polls for the caller, newest first.
func (s *Service) ListPolls(ctx context.Context, input ListPollsInput) ([]domain.PollView, error) {
	viewer, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.PollFilter{
		Viewer:     viewer,
		Mode:       input.Mode,
		Categories: input.Categories,
		Authors:    input.Authors,
		Offset:     input.Offset,
		Limit:      clampLimit(input.Limit, s.cfg.DefaultPageSize, s.cfg.MaxPageSize),
	}
	polls, err := s.polls.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("poll.ListPolls: %w", err)
	}

	polls, err = s.checkListed(ctx, filter, polls)
	if err != nil {
		return nil, fmt.Errorf("poll.ListPolls: %w", err)
	}

	views, err := s.project(ctx, viewer, polls)
	if err != nil {
		return nil, fmt.Errorf("poll.ListPolls: %w", err)
	}
	return views, nil
}

// SuggestCategories returns categories starting with prefix among polls the
// caller may see, most used first.
func (s *Service) SuggestCategories(ctx context.Context, prefix string, limit int) ([]domain.CategoryUsage, error) {
	viewer, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "must be non-negative")
	}

	prefix = strings.TrimPrefix(strings.TrimSpace(prefix), "#")
	out, err := s.categories.Categories(ctx, viewer, prefix, clampLimit(limit, defaultSuggestLimit, maxSuggestLimit))
	if err != nil {
		return nil, fmt.Errorf("poll.SuggestCategories: %w", err)
	}
	return out, nil
}

// clampLimit maps 0 to def and caps the result at upper.
func clampLimit(limit, def, upper int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, upper)
}

// checkListed drops rows the in-memory listing predicate rejects. The
// friend list is only loaded when friends mode needs it.
func (s *Service) checkListed(ctx context.Context, f domain.PollFilter, polls []domain.Poll) ([]domain.Poll, error) {
	var friends []string
	if f.Mode == domain.ListModeFriends && len(f.Authors) == 0 && len(polls) > 0 {
		list, err := s.friends.ListFriends(ctx, f.Viewer)
		if err != nil {
			return nil, fmt.Errorf("load friends: %w", err)
		}
		friends = make([]string, len(list))
		for i, fr := range list {
			friends[i] = fr.Email
		}
	}

	out := polls[:0]
	for i := range polls {
		if !f.Matches(&polls[i], friends) {
			s.log.WarnContext(ctx, "listing returned poll outside filter",
				slog.String("poll_id", polls[i].ID.String()),
				slog.String("mode", f.Mode.String()),
			)
			continue
		}
		out = append(out, polls[i])
	}
	return out, nil
}
