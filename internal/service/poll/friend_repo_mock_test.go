package poll

import (
	"context"
	"sync"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

var _ friendRepo = &friendRepoMock{}

type friendRepoMock struct {
	ListFriendsFunc func(ctx context.Context, user string) ([]domain.Friend, error)

	calls struct {
		ListFriends []struct {
			Ctx  context.Context
			User string
		}
	}
	lockListFriends sync.RWMutex
}

func (mock *friendRepoMock) ListFriends(ctx context.Context, user string) ([]domain.Friend, error) {
	if mock.ListFriendsFunc == nil {
		panic("friendRepoMock.ListFriendsFunc: method is nil but friendRepo.ListFriends was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User string
	}{
		Ctx:  ctx,
		User: user,
	}
	mock.lockListFriends.Lock()
	mock.calls.ListFriends = append(mock.calls.ListFriends, callInfo)
	mock.lockListFriends.Unlock()
	return mock.ListFriendsFunc(ctx, user)
}

func (mock *friendRepoMock) ListFriendsCalls() []struct {
	Ctx  context.Context
	User string
} {
	mock.lockListFriends.RLock()
	calls := mock.calls.ListFriends
	mock.lockListFriends.RUnlock()
	return calls
}
