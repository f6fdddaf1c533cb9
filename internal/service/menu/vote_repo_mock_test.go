package menu

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	DeleteByItemFunc func(ctx context.Context, itemID uuid.UUID) (int, error)

	calls struct {
		DeleteByItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
	}
	lockDeleteByItem sync.RWMutex
}

func (mock *voteRepoMock) DeleteByItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	if mock.DeleteByItemFunc == nil {
		panic("voteRepoMock.DeleteByItemFunc: method is nil but voteRepo.DeleteByItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		ItemID: itemID,
	}
	mock.lockDeleteByItem.Lock()
	mock.calls.DeleteByItem = append(mock.calls.DeleteByItem, callInfo)
	mock.lockDeleteByItem.Unlock()
	return mock.DeleteByItemFunc(ctx, itemID)
}

func (mock *voteRepoMock) DeleteByItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}
	mock.lockDeleteByItem.RLock()
	calls = mock.calls.DeleteByItem
	mock.lockDeleteByItem.RUnlock()
	return calls
}
