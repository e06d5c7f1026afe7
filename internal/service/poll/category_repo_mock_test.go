package poll

import (
	"context"
	"sync"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	CategoriesFunc func(ctx context.Context, viewer string, prefix string, limit int) ([]domain.CategoryUsage, error)

	calls struct {
		Categories []struct {
			Ctx    context.Context
			Viewer string
			Prefix string
			Limit  int
		}
	}
	lockCategories sync.RWMutex
}

func (mock *categoryRepoMock) Categories(ctx context.Context, viewer string, prefix string, limit int) ([]domain.CategoryUsage, error) {
	if mock.CategoriesFunc == nil {
		panic("categoryRepoMock.CategoriesFunc: method is nil but categoryRepo.Categories was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Viewer string
		Prefix string
		Limit  int
	}{
		Ctx:    ctx,
		Viewer: viewer,
		Prefix: prefix,
		Limit:  limit,
	}
	mock.lockCategories.Lock()
	mock.calls.Categories = append(mock.calls.Categories, callInfo)
	mock.lockCategories.Unlock()
	return mock.CategoriesFunc(ctx, viewer, prefix, limit)
}

func (mock *categoryRepoMock) CategoriesCalls() []struct {
	Ctx    context.Context
	Viewer string
	Prefix string
	Limit  int
} {
	mock.lockCategories.RLock()
	calls := mock.calls.Categories
	mock.lockCategories.RUnlock()
	return calls
}
