package auth

import (
	"sync"
	"time"

	"github.com/heartmarshall/polls-backend/internal/auth"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	GenerateTokenFunc func(id auth.Identity) (string, time.Time, error)
	ValidateTokenFunc func(token string) (auth.Identity, error)

	calls struct {
		GenerateToken []struct {
			Id auth.Identity
		}
		ValidateToken []struct {
			Token string
		}
	}
	lockGenerateToken sync.RWMutex
	lockValidateToken sync.RWMutex
}

func (mock *tokenManagerMock) GenerateToken(id auth.Identity) (string, time.Time, error) {
	if mock.GenerateTokenFunc == nil {
		panic("tokenManagerMock.GenerateTokenFunc: method is nil but tokenManager.GenerateToken was just called")
	}
	callInfo := struct {
		Id auth.Identity
	}{
		Id: id,
	}
	mock.lockGenerateToken.Lock()
	mock.calls.GenerateToken = append(mock.calls.GenerateToken, callInfo)
	mock.lockGenerateToken.Unlock()
	return mock.GenerateTokenFunc(id)
}

func (mock *tokenManagerMock) GenerateTokenCalls() []struct {
	Id auth.Identity
} {
	mock.lockGenerateToken.RLock()
	calls := mock.calls.GenerateToken
	mock.lockGenerateToken.RUnlock()
	return calls
}

func (mock *tokenManagerMock) ValidateToken(token string) (auth.Identity, error) {
	if mock.ValidateTokenFunc == nil {
		panic("tokenManagerMock.ValidateTokenFunc: method is nil but tokenManager.ValidateToken was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidateToken.Lock()
	mock.calls.ValidateToken = append(mock.calls.ValidateToken, callInfo)
	mock.lockValidateToken.Unlock()
	return mock.ValidateTokenFunc(token)
}

func (mock *tokenManagerMock) ValidateTokenCalls() []struct {
	Token string
} {
	mock.lockValidateToken.RLock()
	calls := mock.calls.ValidateToken
	mock.lockValidateToken.RUnlock()
	return calls
}
