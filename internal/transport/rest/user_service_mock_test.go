package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/internal/service/user"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	CheckEmailAvailableFunc func(ctx context.Context, email string) (bool, error)
	GetProfileFunc          func(ctx context.Context, email string) (*domain.User, error)
	UpdateProfileFunc       func(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	DeleteAccountFunc       func(ctx context.Context, email string) error
	AddFriendFunc           func(ctx context.Context, email string) (*domain.Friend, error)
	RemoveFriendFunc        func(ctx context.Context, email string) error
	ListFriendsFunc         func(ctx context.Context) ([]domain.Friend, error)

	calls struct {
		CheckEmailAvailable []struct {
			Ctx   context.Context
			Email string
		}
		GetProfile []struct {
			Ctx   context.Context
			Email string
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input user.UpdateProfileInput
		}
		DeleteAccount []struct {
			Ctx   context.Context
			Email string
		}
		AddFriend []struct {
			Ctx   context.Context
			Email string
		}
		RemoveFriend []struct {
			Ctx   context.Context
			Email string
		}
		ListFriends []struct {
			Ctx context.Context
		}
	}
	lockCheckEmailAvailable sync.RWMutex
	lockGetProfile          sync.RWMutex
	lockUpdateProfile       sync.RWMutex
	lockDeleteAccount       sync.RWMutex
	lockAddFriend           sync.RWMutex
	lockRemoveFriend        sync.RWMutex
	lockListFriends         sync.RWMutex
}

func (mock *userServiceMock) CheckEmailAvailable(ctx context.Context, email string) (bool, error) {
	if mock.CheckEmailAvailableFunc == nil {
		panic("userServiceMock.CheckEmailAvailableFunc: method is nil but userService.CheckEmailAvailable was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockCheckEmailAvailable.Lock()
	mock.calls.CheckEmailAvailable = append(mock.calls.CheckEmailAvailable, callInfo)
	mock.lockCheckEmailAvailable.Unlock()
	return mock.CheckEmailAvailableFunc(ctx, email)
}

func (mock *userServiceMock) CheckEmailAvailableCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockCheckEmailAvailable.RLock()
	calls := mock.calls.CheckEmailAvailable
	mock.lockCheckEmailAvailable.RUnlock()
	return calls
}

func (mock *userServiceMock) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("userServiceMock.GetProfileFunc: method is nil but userService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx, email)
}

func (mock *userServiceMock) GetProfileCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userServiceMock.UpdateProfileFunc: method is nil but userService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *userServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input user.UpdateProfileInput
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) DeleteAccount(ctx context.Context, email string) error {
	if mock.DeleteAccountFunc == nil {
		panic("userServiceMock.DeleteAccountFunc: method is nil but userService.DeleteAccount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockDeleteAccount.Lock()
	mock.calls.DeleteAccount = append(mock.calls.DeleteAccount, callInfo)
	mock.lockDeleteAccount.Unlock()
	return mock.DeleteAccountFunc(ctx, email)
}

func (mock *userServiceMock) DeleteAccountCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockDeleteAccount.RLock()
	calls := mock.calls.DeleteAccount
	mock.lockDeleteAccount.RUnlock()
	return calls
}

func (mock *userServiceMock) AddFriend(ctx context.Context, email string) (*domain.Friend, error) {
	if mock.AddFriendFunc == nil {
		panic("userServiceMock.AddFriendFunc: method is nil but userService.AddFriend was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockAddFriend.Lock()
	mock.calls.AddFriend = append(mock.calls.AddFriend, callInfo)
	mock.lockAddFriend.Unlock()
	return mock.AddFriendFunc(ctx, email)
}

func (mock *userServiceMock) AddFriendCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockAddFriend.RLock()
	calls := mock.calls.AddFriend
	mock.lockAddFriend.RUnlock()
	return calls
}

func (mock *userServiceMock) RemoveFriend(ctx context.Context, email string) error {
	if mock.RemoveFriendFunc == nil {
		panic("userServiceMock.RemoveFriendFunc: method is nil but userService.RemoveFriend was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockRemoveFriend.Lock()
	mock.calls.RemoveFriend = append(mock.calls.RemoveFriend, callInfo)
	mock.lockRemoveFriend.Unlock()
	return mock.RemoveFriendFunc(ctx, email)
}

func (mock *userServiceMock) RemoveFriendCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockRemoveFriend.RLock()
	calls := mock.calls.RemoveFriend
	mock.lockRemoveFriend.RUnlock()
	return calls
}

func (mock *userServiceMock) ListFriends(ctx context.Context) ([]domain.Friend, error) {
	if mock.ListFriendsFunc == nil {
		panic("userServiceMock.ListFriendsFunc: method is nil but userService.ListFriends was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListFriends.Lock()
	mock.calls.ListFriends = append(mock.calls.ListFriends, callInfo)
	mock.lockListFriends.Unlock()
	return mock.ListFriendsFunc(ctx)
}

func (mock *userServiceMock) ListFriendsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListFriends.RLock()
	calls := mock.calls.ListFriends
	mock.lockListFriends.RUnlock()
	return calls
}
