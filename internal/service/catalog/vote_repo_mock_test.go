package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	DeleteByDishFunc func(ctx context.Context, dishID uuid.UUID) (int, error)

	calls struct {
		DeleteByDish []struct {
			Ctx    context.Context
			DishID uuid.UUID
		}
	}
	lockDeleteByDish sync.RWMutex
}

func (mock *voteRepoMock) DeleteByDish(ctx context.Context, dishID uuid.UUID) (int, error) {
	if mock.DeleteByDishFunc == nil {
		panic("voteRepoMock.DeleteByDishFunc: method is nil but voteRepo.DeleteByDish was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DishID uuid.UUID
	}{
		Ctx:    ctx,
		DishID: dishID,
	}
	mock.lockDeleteByDish.Lock()
	mock.calls.DeleteByDish = append(mock.calls.DeleteByDish, callInfo)
	mock.lockDeleteByDish.Unlock()
	return mock.DeleteByDishFunc(ctx, dishID)
}

func (mock *voteRepoMock) DeleteByDishCalls() []struct {
	Ctx    context.Context
	DishID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		DishID uuid.UUID
	}
	mock.lockDeleteByDish.RLock()
	calls = mock.calls.DeleteByDish
	mock.lockDeleteByDish.RUnlock()
	return calls
}
