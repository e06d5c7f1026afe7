package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	AddFriendFunc    func(ctx context.Context, user string, friend string) (*domain.Friend, error)
	DeleteFunc       func(ctx context.Context, email string) error
	ExistsFunc       func(ctx context.Context, email string) (bool, error)
	GetByEmailFunc   func(ctx context.Context, email string) (*domain.User, error)
	ListFriendsFunc  func(ctx context.Context, user string) ([]domain.Friend, error)
	RemoveFriendFunc func(ctx context.Context, user string, friend string) error
	UpdateFunc       func(ctx context.Context, email string, params domain.UserUpdateParams) (*domain.User, error)
	SetAdminFunc     func(ctx context.Context, email string) (bool, error)

	calls struct {
		AddFriend []struct {
			Ctx    context.Context
			User   string
			Friend string
		}
		Delete []struct {
			Ctx   context.Context
			Email string
		}
		Exists []struct {
			Ctx   context.Context
			Email string
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		ListFriends []struct {
			Ctx  context.Context
			User string
		}
		RemoveFriend []struct {
			Ctx    context.Context
			User   string
			Friend string
		}
		Update []struct {
			Ctx    context.Context
			Email  string
			Params domain.UserUpdateParams
		}
		SetAdmin []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockAddFriend    sync.RWMutex
	lockDelete       sync.RWMutex
	lockExists       sync.RWMutex
	lockGetByEmail   sync.RWMutex
	lockListFriends  sync.RWMutex
	lockRemoveFriend sync.RWMutex
	lockUpdate       sync.RWMutex
	lockSetAdmin     sync.RWMutex
}

func (mock *userRepoMock) AddFriend(ctx context.Context, user string, friend string) (*domain.Friend, error) {
	if mock.AddFriendFunc == nil {
		panic("userRepoMock.AddFriendFunc: method is nil but userRepo.AddFriend was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		User   string
		Friend string
	}{
		Ctx:    ctx,
		User:   user,
		Friend: friend,
	}
	mock.lockAddFriend.Lock()
	mock.calls.AddFriend = append(mock.calls.AddFriend, callInfo)
	mock.lockAddFriend.Unlock()
	return mock.AddFriendFunc(ctx, user, friend)
}

func (mock *userRepoMock) AddFriendCalls() []struct {
	Ctx    context.Context
	User   string
	Friend string
} {
	mock.lockAddFriend.RLock()
	calls := mock.calls.AddFriend
	mock.lockAddFriend.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, email string) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, email)
}

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *userRepoMock) Exists(ctx context.Context, email string) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("userRepoMock.ExistsFunc: method is nil but userRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, email)
}

func (mock *userRepoMock) ExistsCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) ListFriends(ctx context.Context, user string) ([]domain.Friend, error) {
	if mock.ListFriendsFunc == nil {
		panic("userRepoMock.ListFriendsFunc: method is nil but userRepo.ListFriends was just called")
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

func (mock *userRepoMock) ListFriendsCalls() []struct {
	Ctx  context.Context
	User string
} {
	mock.lockListFriends.RLock()
	calls := mock.calls.ListFriends
	mock.lockListFriends.RUnlock()
	return calls
}

func (mock *userRepoMock) RemoveFriend(ctx context.Context, user string, friend string) error {
	if mock.RemoveFriendFunc == nil {
		panic("userRepoMock.RemoveFriendFunc: method is nil but userRepo.RemoveFriend was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		User   string
		Friend string
	}{
		Ctx:    ctx,
		User:   user,
		Friend: friend,
	}
	mock.lockRemoveFriend.Lock()
	mock.calls.RemoveFriend = append(mock.calls.RemoveFriend, callInfo)
	mock.lockRemoveFriend.Unlock()
	return mock.RemoveFriendFunc(ctx, user, friend)
}

func (mock *userRepoMock) RemoveFriendCalls() []struct {
	Ctx    context.Context
	User   string
	Friend string
} {
	mock.lockRemoveFriend.RLock()
	calls := mock.calls.RemoveFriend
	mock.lockRemoveFriend.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, email string, params domain.UserUpdateParams) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Email  string
		Params domain.UserUpdateParams
	}{
		Ctx:    ctx,
		Email:  email,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, email, params)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Email  string
	Params domain.UserUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) SetAdmin(ctx context.Context, email string) (bool, error) {
	if mock.SetAdminFunc == nil {
		panic("userRepoMock.SetAdminFunc: method is nil but userRepo.SetAdmin was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockSetAdmin.Lock()
	mock.calls.SetAdmin = append(mock.calls.SetAdmin, callInfo)
	mock.lockSetAdmin.Unlock()
	return mock.SetAdminFunc(ctx, email)
}

func (mock *userRepoMock) SetAdminCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockSetAdmin.RLock()
	calls := mock.calls.SetAdmin
	mock.lockSetAdmin.RUnlock()
	return calls
}
