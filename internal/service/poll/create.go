package poll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

// CreatePoll stores a new poll owned by the caller. Categories are derived
// from the question.
func (s *Service) CreatePoll(ctx context.Context, input CreatePollInput) (*domain.PollView, error) {
	owner, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(s.cfg.MaxOptions); err != nil {
		return nil, err
	}

	options := make([]domain.Option, len(input.Options))
	for i, o := range input.Options {
		options[i] = domain.Option{Text: o.Text, Description: o.Description}
	}
	p := domain.NewPoll(owner, input.Question, input.Image, input.Privacy.toDomain(), options, time.Now().UTC())

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.polls.Create(txCtx, p)
	})
	if err != nil {
		return nil, fmt.Errorf("poll.CreatePoll: %w", err)
	}

	s.log.InfoContext(ctx, "poll created",
		slog.String("poll_id", p.ID.String()),
		slog.String("owner", owner),
		slog.Int("options", len(p.Options)),
		slog.Any("categories", p.Categories),
	)

	view := domain.Project(p, owner, nil)
	return &view, nil
}
