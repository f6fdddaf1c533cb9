package vote

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetItemContextFunc func(ctx context.Context, tenantID uuid.UUID, itemID uuid.UUID) (*domain.ItemContext, error)

	calls struct {
		GetItemContext []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			ItemID   uuid.UUID
		}
	}
	lockGetItemContext sync.RWMutex
}

func (mock *itemRepoMock) GetItemContext(ctx context.Context, tenantID uuid.UUID, itemID uuid.UUID) (*domain.ItemContext, error) {
	if mock.GetItemContextFunc == nil {
		panic("itemRepoMock.GetItemContextFunc: method is nil but itemRepo.GetItemContext was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		ItemID   uuid.UUID
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		ItemID:   itemID,
	}
	mock.lockGetItemContext.Lock()
	mock.calls.GetItemContext = append(mock.calls.GetItemContext, callInfo)
	mock.lockGetItemContext.Unlock()
	return mock.GetItemContextFunc(ctx, tenantID, itemID)
}

func (mock *itemRepoMock) GetItemContextCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	ItemID   uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		ItemID   uuid.UUID
	}
	mock.lockGetItemContext.RLock()
	calls = mock.calls.GetItemContext
	mock.lockGetItemContext.RUnlock()
	return calls
}
