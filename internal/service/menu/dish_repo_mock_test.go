package menu

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

var _ dishRepo = &dishRepoMock{}

type dishRepoMock struct {
	ExistsFunc   func(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (bool, error)
	GetByIDsFunc func(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]domain.Dish, error)

	calls struct {
		Exists []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Id       uuid.UUID
		}
		GetByIDs []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Ids      []uuid.UUID
		}
	}
	lockExists   sync.RWMutex
	lockGetByIDs sync.RWMutex
}

func (mock *dishRepoMock) Exists(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("dishRepoMock.ExistsFunc: method is nil but dishRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		Id:       id,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, tenantID, id)
}

func (mock *dishRepoMock) ExistsCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Id       uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
	}
	mock.lockExists.RLock()
	calls = mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *dishRepoMock) GetByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]domain.Dish, error) {
	if mock.GetByIDsFunc == nil {
		panic("dishRepoMock.GetByIDsFunc: method is nil but dishRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Ids      []uuid.UUID
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		Ids:      ids,
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, tenantID, ids)
}

func (mock *dishRepoMock) GetByIDsCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Ids      []uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Ids      []uuid.UUID
	}
	mock.lockGetByIDs.RLock()
	calls = mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
