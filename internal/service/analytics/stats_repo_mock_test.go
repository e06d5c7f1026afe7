package analytics

import (
	"context"
	"sync"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	AuthoredTotalFunc    func(ctx context.Context, owner string) (int, error)
	AuthorsFunc          func(ctx context.Context, viewer string, prefix string, limit int) ([]domain.SearchItem, error)
	CategoriesFunc       func(ctx context.Context, viewer string, prefix string, limit int) ([]domain.CategoryUsage, error)
	CategoryOverlapsFunc func(ctx context.Context, subject string, viewer string) ([]domain.CategoryOverlap, error)
	VotedTotalFunc       func(ctx context.Context, voter string) (int, error)

	calls struct {
		AuthoredTotal []struct {
			Ctx   context.Context
			Owner string
		}
		Authors []struct {
			Ctx    context.Context
			Viewer string
			Prefix string
			Limit  int
		}
		Categories []struct {
			Ctx    context.Context
			Viewer string
			Prefix string
			Limit  int
		}
		CategoryOverlaps []struct {
			Ctx     context.Context
			Subject string
			Viewer  string
		}
		VotedTotal []struct {
			Ctx   context.Context
			Voter string
		}
	}
	lockAuthoredTotal    sync.RWMutex
	lockAuthors          sync.RWMutex
	lockCategories       sync.RWMutex
	lockCategoryOverlaps sync.RWMutex
	lockVotedTotal       sync.RWMutex
}

func (mock *statsRepoMock) AuthoredTotal(ctx context.Context, owner string) (int, error) {
	if mock.AuthoredTotalFunc == nil {
		panic("statsRepoMock.AuthoredTotalFunc: method is nil but statsRepo.AuthoredTotal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner string
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockAuthoredTotal.Lock()
	mock.calls.AuthoredTotal = append(mock.calls.AuthoredTotal, callInfo)
	mock.lockAuthoredTotal.Unlock()
	return mock.AuthoredTotalFunc(ctx, owner)
}

func (mock *statsRepoMock) AuthoredTotalCalls() []struct {
	Ctx   context.Context
	Owner string
} {
	mock.lockAuthoredTotal.RLock()
	calls := mock.calls.AuthoredTotal
	mock.lockAuthoredTotal.RUnlock()
	return calls
}

func (mock *statsRepoMock) Authors(ctx context.Context, viewer string, prefix string, limit int) ([]domain.SearchItem, error) {
	if mock.AuthorsFunc == nil {
		panic("statsRepoMock.AuthorsFunc: method is nil but statsRepo.Authors was just called")
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
	mock.lockAuthors.Lock()
	mock.calls.Authors = append(mock.calls.Authors, callInfo)
	mock.lockAuthors.Unlock()
	return mock.AuthorsFunc(ctx, viewer, prefix, limit)
}

func (mock *statsRepoMock) AuthorsCalls() []struct {
	Ctx    context.Context
	Viewer string
	Prefix string
	Limit  int
} {
	mock.lockAuthors.RLock()
	calls := mock.calls.Authors
	mock.lockAuthors.RUnlock()
	return calls
}

func (mock *statsRepoMock) Categories(ctx context.Context, viewer string, prefix string, limit int) ([]domain.CategoryUsage, error) {
	if mock.CategoriesFunc == nil {
		panic("statsRepoMock.CategoriesFunc: method is nil but statsRepo.Categories was just called")
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

func (mock *statsRepoMock) CategoriesCalls() []struct {
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

func (mock *statsRepoMock) CategoryOverlaps(ctx context.Context, subject string, viewer string) ([]domain.CategoryOverlap, error) {
	if mock.CategoryOverlapsFunc == nil {
		panic("statsRepoMock.CategoryOverlapsFunc: method is nil but statsRepo.CategoryOverlaps was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Subject string
		Viewer  string
	}{
		Ctx:     ctx,
		Subject: subject,
		Viewer:  viewer,
	}
	mock.lockCategoryOverlaps.Lock()
	mock.calls.CategoryOverlaps = append(mock.calls.CategoryOverlaps, callInfo)
	mock.lockCategoryOverlaps.Unlock()
	return mock.CategoryOverlapsFunc(ctx, subject, viewer)
}

func (mock *statsRepoMock) CategoryOverlapsCalls() []struct {
	Ctx     context.Context
	Subject string
	Viewer  string
} {
	mock.lockCategoryOverlaps.RLock()
	calls := mock.calls.CategoryOverlaps
	mock.lockCategoryOverlaps.RUnlock()
	return calls
}

func (mock *statsRepoMock) VotedTotal(ctx context.Context, voter string) (int, error) {
	if mock.VotedTotalFunc == nil {
		panic("statsRepoMock.VotedTotalFunc: method is nil but statsRepo.VotedTotal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Voter string
	}{
		Ctx:   ctx,
		Voter: voter,
	}
	mock.lockVotedTotal.Lock()
	mock.calls.VotedTotal = append(mock.calls.VotedTotal, callInfo)
	mock.lockVotedTotal.Unlock()
	return mock.VotedTotalFunc(ctx, voter)
}

func (mock *statsRepoMock) VotedTotalCalls() []struct {
	Ctx   context.Context
	Voter string
} {
	mock.lockVotedTotal.RLock()
	calls := mock.calls.VotedTotal
	mock.lockVotedTotal.RUnlock()
	return calls
}
