package vote

import (
	"sync"

	"github.com/heartmarshall/canteen-backend/internal/ratelimit"
)

var _ limiter = &limiterMock{}

type limiterMock struct {
	CheckFunc func(key string) ratelimit.Decision

	calls struct {
		Check []struct {
			Key string
		}
	}
	lockCheck sync.RWMutex
}

func (mock *limiterMock) Check(key string) ratelimit.Decision {
	if mock.CheckFunc == nil {
		panic("limiterMock.CheckFunc: method is nil but limiter.Check was just called")
	}
	callInfo := struct {
		Key string
	}{
		Key: key,
	}
	mock.lockCheck.Lock()
	mock.calls.Check = append(mock.calls.Check, callInfo)
	mock.lockCheck.Unlock()
	return mock.CheckFunc(key)
}

func (mock *limiterMock) CheckCalls() []struct {
	Key string
} {
	var calls []struct {
		Key string
	}
	mock.lockCheck.RLock()
	calls = mock.calls.Check
	mock.lockCheck.RUnlock()
	return calls
}
