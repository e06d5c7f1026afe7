// Package comment adds and pages poll comments.
package comment

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/polls-backend/internal/config"
	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

// commentRepo defines the comment storage needed by comment service.
type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListByPoll(ctx context.Context, pollID uuid.UUID, limit, offset int) ([]domain.Comment, int, error)
}

// pollRepo defines the poll lookup needed to check visibility.
type pollRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
}

// Service implements comment operations.
type Service struct {
	log      *slog.Logger
	comments commentRepo
	polls    pollRepo
	cfg      config.CommentsConfig
}

// NewService creates a new comment service instance.
func NewService(logger *slog.Logger, comments commentRepo, polls pollRepo, cfg config.CommentsConfig) *Service {
	return &Service{
		log:      logger.With("service", "comment"),
		comments: comments,
		polls:    polls,
		cfg:      cfg,
	}
}

// AddCommentInput holds parameters for adding a comment.
type AddCommentInput struct {
	PollID uuid.UUID
	Text   string
}

// ListCommentsInput holds parameters for paging comments. Zero values
// select the first page and the configured page size.
type ListCommentsInput struct {
	PollID   uuid.UUID
	Page     int
	PageSize int
}

// AddComment appends a comment by the caller to a poll they may see.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error) {
	author, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Text = strings.TrimSpace(input.Text)
	switch {
	case input.Text == "":
		return nil, domain.NewValidationError("text", "required")
	case utf8.RuneCountInString(input.Text) > s.cfg.MaxLength:
		return nil, domain.NewValidationError("text", fmt.Sprintf("max %d characters", s.cfg.MaxLength))
	}

	if err := s.requireVisible(ctx, input.PollID, author); err != nil {
		return nil, fmt.Errorf("comment.AddComment: %w", err)
	}

	c, err := s.comments.Create(ctx, &domain.Comment{
		ID:     uuid.New(),
		PollID: input.PollID,
		Author: author,
		Text:   input.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("comment.AddComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("poll_id", input.PollID.String()),
		slog.String("comment_id", c.ID.String()),
	)
	return c, nil
}

// ListComments returns one newest-first page of a poll's comments.
func (s *Service) ListComments(ctx context.Context, input ListCommentsInput) (*domain.CommentPage, error) {
	viewer, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var errs []domain.FieldError
	if input.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be at least 1"})
	}
	if input.PageSize < 0 {
		errs = append(errs, domain.FieldError{Field: "page_size", Message: "must be at least 1"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	page := max(input.Page, 1)
	size := input.PageSize
	if size == 0 {
		size = s.cfg.PageSize
	}
	size = min(size, s.cfg.MaxPageSize)
	// page*size must fit in an int for the offset and hasMore math.
	if page > math.MaxInt/size {
		return nil, domain.NewValidationError("page", "is too large")
	}

	if err := s.requireVisible(ctx, input.PollID, viewer); err != nil {
		return nil, fmt.Errorf("comment.ListComments: %w", err)
	}

	items, total, err := s.comments.ListByPoll(ctx, input.PollID, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("comment.ListComments: %w", err)
	}

	return &domain.CommentPage{
		Page:    page,
		Size:    size,
		HasMore: total > page*size,
		Items:   items,
	}, nil
}

func (s *Service) requireVisible(ctx context.Context, pollID uuid.UUID, viewer string) error {
	p, err := s.polls.GetByID(ctx, pollID)
	if err != nil {
		return err
	}
	if !domain.CanView(p, viewer) {
		return fmt.Errorf("poll %s: %w", pollID, domain.ErrNotFound)
	}
	return nil
}
