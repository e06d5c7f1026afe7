package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

var _ searchService = &searchServiceMock{}

type searchServiceMock struct {
	SearchFunc func(ctx context.Context, term string) ([]domain.SearchItem, error)

	calls struct {
		Search []struct {
			Ctx  context.Context
			Term string
		}
	}
	lockSearch sync.RWMutex
}

func (mock *searchServiceMock) Search(ctx context.Context, term string) ([]domain.SearchItem, error) {
	if mock.SearchFunc == nil {
		panic("searchServiceMock.SearchFunc: method is nil but searchService.Search was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Term string
	}{
		Ctx:  ctx,
		Term: term,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, term)
}

func (mock *searchServiceMock) SearchCalls() []struct {
	Ctx  context.Context
	Term string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
