// Package vote casts ballots on polls.
package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

// pollRepo defines the poll and ballot storage needed by vote service.
type pollRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	CastVote(ctx context.Context, pollID, optionID uuid.UUID, voter string) (*domain.Ballot, error)
}

// Service applies votes.
type Service struct {
	log   *slog.Logger
	polls pollRepo
}

// NewService creates a new vote service instance.
func NewService(logger *slog.Logger, polls pollRepo) *Service {
	return &Service{
		log:   logger.With("service", "vote"),
		polls: polls,
	}
}

// CastVoteInput holds parameters for casting a vote.
type CastVoteInput struct {
	PollID   uuid.UUID
	OptionID uuid.UUID
}

// Validate validates the cast vote input.
func (i CastVoteInput) Validate() error {
	var errs []domain.FieldError

	if i.PollID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "poll_id", Message: "required"})
	}
	if i.OptionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "option_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CastVote records the caller's vote for one option of a poll they may see.
// A second vote on the same poll fails with ErrAlreadyVoted; the store
// guarantees this under concurrent requests. The poll is re-read after the
// write and projected for the caller.
func (s *Service) CastVote(ctx context.Context, input CastVoteInput) (*domain.PollView, error) {
	voter, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.polls.GetByID(ctx, input.PollID)
	if err != nil {
		return nil, fmt.Errorf("vote.CastVote: %w", err)
	}
	if !domain.CanView(p, voter) {
		return nil, fmt.Errorf("poll %s: %w", input.PollID, domain.ErrNotFound)
	}

	ballot, err := s.polls.CastVote(ctx, input.PollID, input.OptionID, voter)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyVoted) {
			s.log.DebugContext(ctx, "duplicate vote rejected",
				slog.String("poll_id", input.PollID.String()),
				slog.String("voter", voter),
			)
		}
		return nil, fmt.Errorf("vote.CastVote: %w", err)
	}

	s.log.InfoContext(ctx, "vote cast",
		slog.String("poll_id", input.PollID.String()),
		slog.String("option_id", input.OptionID.String()),
		slog.String("voter", voter),
	)

	updated, err := s.polls.GetByID(ctx, input.PollID)
	if err != nil {
		return nil, fmt.Errorf("vote.CastVote reload poll: %w", err)
	}
	view := domain.Project(updated, voter, ballot)
	return &view, nil
}
