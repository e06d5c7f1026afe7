package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

var _ comparisonService = &comparisonServiceMock{}

type comparisonServiceMock struct {
	CompareInterestsFunc func(ctx context.Context, subject string) (*domain.ContrastReport, error)

	calls struct {
		CompareInterests []struct {
			Ctx     context.Context
			Subject string
		}
	}
	lockCompareInterests sync.RWMutex
}

func (mock *comparisonServiceMock) CompareInterests(ctx context.Context, subject string) (*domain.ContrastReport, error) {
	if mock.CompareInterestsFunc == nil {
		panic("comparisonServiceMock.CompareInterestsFunc: method is nil but comparisonService.CompareInterests was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Subject string
	}{
		Ctx:     ctx,
		Subject: subject,
	}
	mock.lockCompareInterests.Lock()
	mock.calls.CompareInterests = append(mock.calls.CompareInterests, callInfo)
	mock.lockCompareInterests.Unlock()
	return mock.CompareInterestsFunc(ctx, subject)
}

func (mock *comparisonServiceMock) CompareInterestsCalls() []struct {
	Ctx     context.Context
	Subject string
} {
	mock.lockCompareInterests.RLock()
	calls := mock.calls.CompareInterests
	mock.lockCompareInterests.RUnlock()
	return calls
}
