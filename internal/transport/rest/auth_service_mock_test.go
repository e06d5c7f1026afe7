package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	SignupFunc func(ctx context.Context, input auth.SignupInput) (*domain.Session, error)
	LoginFunc  func(ctx context.Context, input auth.LoginInput) (*domain.Session, error)
	MeFunc     func(ctx context.Context) (*domain.Session, error)

	calls struct {
		Signup []struct {
			Ctx   context.Context
			Input auth.SignupInput
		}
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Me []struct {
			Ctx context.Context
		}
	}
	lockSignup sync.RWMutex
	lockLogin  sync.RWMutex
	lockMe     sync.RWMutex
}

func (mock *authServiceMock) Signup(ctx context.Context, input auth.SignupInput) (*domain.Session, error) {
	if mock.SignupFunc == nil {
		panic("authServiceMock.SignupFunc: method is nil but authService.Signup was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.SignupInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSignup.Lock()
	mock.calls.Signup = append(mock.calls.Signup, callInfo)
	mock.lockSignup.Unlock()
	return mock.SignupFunc(ctx, input)
}

func (mock *authServiceMock) SignupCalls() []struct {
	Ctx   context.Context
	Input auth.SignupInput
} {
	mock.lockSignup.RLock()
	calls := mock.calls.Signup
	mock.lockSignup.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*domain.Session, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Me(ctx context.Context) (*domain.Session, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}
