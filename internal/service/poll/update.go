package poll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

// UpdatePoll changes the question, image or privacy of a poll the caller
// owns. Categories are re-derived whenever the question is replaced. Polls
// owned by someone else are reported as not found.
func (s *Service) UpdatePoll(ctx context.Context, input UpdatePollInput) (*domain.PollView, error) {
	viewer, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.PollUpdateParams{
		Question: input.Question,
		Image:    input.Image,
	}
	if input.Question != nil {
		params.Categories = domain.DeriveCategories(*input.Question)
	}
	if input.Privacy != nil {
		privacy := input.Privacy.toDomain()
		params.Privacy = &privacy
	}

	var updated *domain.Poll
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireOwner(txCtx, input.ID, viewer); err != nil {
			return err
		}
		var err error
		updated, err = s.polls.Update(txCtx, input.ID, params)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("poll.UpdatePoll: %w", err)
	}

	s.log.InfoContext(ctx, "poll updated",
		slog.String("poll_id", input.ID.String()),
		slog.Bool("question_changed", input.Question != nil),
		slog.Bool("privacy_changed", input.Privacy != nil),
	)

	views, err := s.project(ctx, viewer, []domain.Poll{*updated})
	if err != nil {
		return nil, fmt.Errorf("poll.UpdatePoll: %w", err)
	}
	return &views[0], nil
}

// DeletePoll removes a poll the caller owns together with its options,
// votes and comments.
func (s *Service) DeletePoll(ctx context.Context, id uuid.UUID) error {
	viewer, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireOwner(txCtx, id, viewer); err != nil {
			return err
		}
		return s.polls.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("poll.DeletePoll: %w", err)
	}

	s.log.InfoContext(ctx, "poll deleted", slog.String("poll_id", id.String()))
	return nil
}

func (s *Service) requireOwner(ctx context.Context, id uuid.UUID, viewer string) error {
	p, err := s.polls.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Owner != viewer {
		return fmt.Errorf("poll %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
