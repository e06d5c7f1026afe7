package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/internal/service/poll"
)

var _ pollService = &pollServiceMock{}

type pollServiceMock struct {
	CreatePollFunc        func(ctx context.Context, input poll.CreatePollInput) (*domain.PollView, error)
	GetPollFunc           func(ctx context.Context, id uuid.UUID) (*domain.PollView, error)
	ListPollsFunc         func(ctx context.Context, input poll.ListPollsInput) ([]domain.PollView, error)
	UpdatePollFunc        func(ctx context.Context, input poll.UpdatePollInput) (*domain.PollView, error)
	DeletePollFunc        func(ctx context.Context, id uuid.UUID) error
	SuggestCategoriesFunc func(ctx context.Context, prefix string, limit int) ([]domain.CategoryUsage, error)

	calls struct {
		CreatePoll []struct {
			Ctx   context.Context
			Input poll.CreatePollInput
		}
		GetPoll []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListPolls []struct {
			Ctx   context.Context
			Input poll.ListPollsInput
		}
		UpdatePoll []struct {
			Ctx   context.Context
			Input poll.UpdatePollInput
		}
		DeletePoll []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SuggestCategories []struct {
			Ctx    context.Context
			Prefix string
			Limit  int
		}
	}
	lockCreatePoll        sync.RWMutex
	lockGetPoll           sync.RWMutex
	lockListPolls         sync.RWMutex
	lockUpdatePoll        sync.RWMutex
	lockDeletePoll        sync.RWMutex
	lockSuggestCategories sync.RWMutex
}

func (mock *pollServiceMock) CreatePoll(ctx context.Context, input poll.CreatePollInput) (*domain.PollView, error) {
	if mock.CreatePollFunc == nil {
		panic("pollServiceMock.CreatePollFunc: method is nil but pollService.CreatePoll was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input poll.CreatePollInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreatePoll.Lock()
	mock.calls.CreatePoll = append(mock.calls.CreatePoll, callInfo)
	mock.lockCreatePoll.Unlock()
	return mock.CreatePollFunc(ctx, input)
}

func (mock *pollServiceMock) CreatePollCalls() []struct {
	Ctx   context.Context
	Input poll.CreatePollInput
} {
	mock.lockCreatePoll.RLock()
	calls := mock.calls.CreatePoll
	mock.lockCreatePoll.RUnlock()
	return calls
}

func (mock *pollServiceMock) GetPoll(ctx context.Context, id uuid.UUID) (*domain.PollView, error) {
	if mock.GetPollFunc == nil {
		panic("pollServiceMock.GetPollFunc: method is nil but pollService.GetPoll was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetPoll.Lock()
	mock.calls.GetPoll = append(mock.calls.GetPoll, callInfo)
	mock.lockGetPoll.Unlock()
	return mock.GetPollFunc(ctx, id)
}

func (mock *pollServiceMock) GetPollCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetPoll.RLock()
	calls := mock.calls.GetPoll
	mock.lockGetPoll.RUnlock()
	return calls
}

func (mock *pollServiceMock) ListPolls(ctx context.Context, input poll.ListPollsInput) ([]domain.PollView, error) {
	if mock.ListPollsFunc == nil {
		panic("pollServiceMock.ListPollsFunc: method is nil but pollService.ListPolls was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input poll.ListPollsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListPolls.Lock()
	mock.calls.ListPolls = append(mock.calls.ListPolls, callInfo)
	mock.lockListPolls.Unlock()
	return mock.ListPollsFunc(ctx, input)
}

func (mock *pollServiceMock) ListPollsCalls() []struct {
	Ctx   context.Context
	Input poll.ListPollsInput
} {
	mock.lockListPolls.RLock()
	calls := mock.calls.ListPolls
	mock.lockListPolls.RUnlock()
	return calls
}

func (mock *pollServiceMock) UpdatePoll(ctx context.Context, input poll.UpdatePollInput) (*domain.PollView, error) {
	if mock.UpdatePollFunc == nil {
		panic("pollServiceMock.UpdatePollFunc: method is nil but pollService.UpdatePoll was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input poll.UpdatePollInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdatePoll.Lock()
	mock.calls.UpdatePoll = append(mock.calls.UpdatePoll, callInfo)
	mock.lockUpdatePoll.Unlock()
	return mock.UpdatePollFunc(ctx, input)
}

func (mock *pollServiceMock) UpdatePollCalls() []struct {
	Ctx   context.Context
	Input poll.UpdatePollInput
} {
	mock.lockUpdatePoll.RLock()
	calls := mock.calls.UpdatePoll
	mock.lockUpdatePoll.RUnlock()
	return calls
}

func (mock *pollServiceMock) DeletePoll(ctx context.Context, id uuid.UUID) error {
	if mock.DeletePollFunc == nil {
		panic("pollServiceMock.DeletePollFunc: method is nil but pollService.DeletePoll was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeletePoll.Lock()
	mock.calls.DeletePoll = append(mock.calls.DeletePoll, callInfo)
	mock.lockDeletePoll.Unlock()
	return mock.DeletePollFunc(ctx, id)
}

func (mock *pollServiceMock) DeletePollCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeletePoll.RLock()
	calls := mock.calls.DeletePoll
	mock.lockDeletePoll.RUnlock()
	return calls
}

func (mock *pollServiceMock) SuggestCategories(ctx context.Context, prefix string, limit int) ([]domain.CategoryUsage, error) {
	if mock.SuggestCategoriesFunc == nil {
		panic("pollServiceMock.SuggestCategoriesFunc: method is nil but pollService.SuggestCategories was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prefix string
		Limit  int
	}{
		Ctx:    ctx,
		Prefix: prefix,
		Limit:  limit,
	}
	mock.lockSuggestCategories.Lock()
	mock.calls.SuggestCategories = append(mock.calls.SuggestCategories, callInfo)
	mock.lockSuggestCategories.Unlock()
	return mock.SuggestCategoriesFunc(ctx, prefix, limit)
}

func (mock *pollServiceMock) SuggestCategoriesCalls() []struct {
	Ctx    context.Context
	Prefix string
	Limit  int
} {
	mock.lockSuggestCategories.RLock()
	calls := mock.calls.SuggestCategories
	mock.lockSuggestCategories.RUnlock()
	return calls
}
