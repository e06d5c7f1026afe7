package vote

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/polls-backend/internal/domain"
)

var _ pollRepo = &pollRepoMock{}

type pollRepoMock struct {
	CastVoteFunc func(ctx context.Context, pollID uuid.UUID, optionID uuid.UUID, voter string) (*domain.Ballot, error)
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Poll, error)

	calls struct {
		CastVote []struct {
			Ctx      context.Context
			PollID   uuid.UUID
			OptionID uuid.UUID
			Voter    string
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCastVote sync.RWMutex
	lockGetByID  sync.RWMutex
}

func (mock *pollRepoMock) CastVote(ctx context.Context, pollID uuid.UUID, optionID uuid.UUID, voter string) (*domain.Ballot, error) {
	if mock.CastVoteFunc == nil {
		panic("pollRepoMock.CastVoteFunc: method is nil but pollRepo.CastVote was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PollID   uuid.UUID
		OptionID uuid.UUID
		Voter    string
	}{
		Ctx:      ctx,
		PollID:   pollID,
		OptionID: optionID,
		Voter:    voter,
	}
	mock.lockCastVote.Lock()
	mock.calls.CastVote = append(mock.calls.CastVote, callInfo)
	mock.lockCastVote.Unlock()
	return mock.CastVoteFunc(ctx, pollID, optionID, voter)
}

func (mock *pollRepoMock) CastVoteCalls() []struct {
	Ctx      context.Context
	PollID   uuid.UUID
	OptionID uuid.UUID
	Voter    string
} {
	mock.lockCastVote.RLock()
	calls := mock.calls.CastVote
	mock.lockCastVote.RUnlock()
	return calls
}

func (mock *pollRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	if mock.GetByIDFunc == nil {
		panic("pollRepoMock.GetByIDFunc: method is nil but pollRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *pollRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
