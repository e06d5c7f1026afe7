package poll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/polls-backend/internal/config"
	"github.com/heartmarshall/polls-backend/internal/domain"
)

// pollRepo defines the poll repository interface needed by poll service.
type pollRepo interface {
	Create(ctx context.Context, p *domain.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	List(ctx context.Context, f domain.PollFilter) ([]domain.Poll, error)
	Update(ctx context.Context, id uuid.UUID, params domain.PollUpdateParams) (*domain.Poll, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Ballots(ctx context.Context, voter string, pollIDs []uuid.UUID) (map[uuid.UUID]domain.Ballot, error)
}

// categoryRepo defines the category usage lookup needed for suggestions.
type categoryRepo interface {
	Categories(ctx context.Context, viewer, prefix string, limit int) ([]domain.CategoryUsage, error)
}

// friendRepo defines the friend list lookup needed to check friends-mode
// listings.
type friendRepo interface {
	ListFriends(ctx context.Context, user string) ([]domain.Friend, error)
}

// txManager defines the transaction manager interface needed by poll service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	defaultSuggestLimit = 10
	maxSuggestLimit     = 50
)

// Service implements poll management and enumeration.
type Service struct {
	log        *slog.Logger
	polls      pollRepo
	categories categoryRepo
	friends    friendRepo
	tx         txManager
	cfg        config.PollsConfig
}

// NewService creates a new poll service instance.
func NewService(
	logger *slog.Logger,
	polls pollRepo,
	categories categoryRepo,
	friends friendRepo,
	tx txManager,
	cfg config.PollsConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "poll"),
		polls:      polls,
		categories: categories,
		friends:    friends,
		tx:         tx,
		cfg:        cfg,
	}
}

// project renders polls for viewer, loading the viewer's ballots in one call.
func (s *Service) project(ctx context.Context, viewer string, polls []domain.Poll) ([]domain.PollView, error) {
	ids := make([]uuid.UUID, len(polls))
	for i := range polls {
		ids[i] = polls[i].ID
	}

	ballots, err := s.polls.Ballots(ctx, viewer, ids)
	if err != nil {
		return nil, fmt.Errorf("load ballots: %w", err)
	}

	views := make([]domain.PollView, len(polls))
	for i := range polls {
		var ballot *domain.Ballot
		if b, ok := ballots[polls[i].ID]; ok {
			ballot = &b
		}
		views[i] = domain.Project(&polls[i], viewer, ballot)
	}
	return views, nil
}
