package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

var _ dishRepo = &dishRepoMock{}

type dishRepoMock struct {
	CreateFunc  func(ctx context.Context, d domain.Dish) (*domain.Dish, error)
	UpdateFunc  func(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, p domain.DishUpdate) (*domain.Dish, error)
	DeleteFunc  func(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) error
	GetByIDFunc func(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Dish, error)
	ListFunc    func(ctx context.Context, tenantID uuid.UUID, f domain.DishFilter) ([]domain.Dish, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			D   domain.Dish
		}
		Update []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Id       uuid.UUID
			P        domain.DishUpdate
		}
		Delete []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Id       uuid.UUID
		}
		GetByID []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Id       uuid.UUID
		}
		List []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			F        domain.DishFilter
		}
	}
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *dishRepoMock) Create(ctx context.Context, d domain.Dish) (*domain.Dish, error) {
	if mock.CreateFunc == nil {
		panic("dishRepoMock.CreateFunc: method is nil but dishRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.Dish
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *dishRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   domain.Dish
} {
	var calls []struct {
		Ctx context.Context
		D   domain.Dish
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *dishRepoMock) Update(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, p domain.DishUpdate) (*domain.Dish, error) {
	if mock.UpdateFunc == nil {
		panic("dishRepoMock.UpdateFunc: method is nil but dishRepo.Update was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
		P        domain.DishUpdate
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		Id:       id,
		P:        p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, tenantID, id, p)
}

func (mock *dishRepoMock) UpdateCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Id       uuid.UUID
	P        domain.DishUpdate
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
		P        domain.DishUpdate
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *dishRepoMock) Delete(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("dishRepoMock.DeleteFunc: method is nil but dishRepo.Delete was just called")
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
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, tenantID, id)
}

func (mock *dishRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Id       uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *dishRepoMock) GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Dish, error) {
	if mock.GetByIDFunc == nil {
		panic("dishRepoMock.GetByIDFunc: method is nil but dishRepo.GetByID was just called")
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
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, tenantID, id)
}

func (mock *dishRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Id       uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *dishRepoMock) List(ctx context.Context, tenantID uuid.UUID, f domain.DishFilter) ([]domain.Dish, error) {
	if mock.ListFunc == nil {
		panic("dishRepoMock.ListFunc: method is nil but dishRepo.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		F        domain.DishFilter
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		F:        f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, tenantID, f)
}

func (mock *dishRepoMock) ListCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	F        domain.DishFilter
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		F        domain.DishFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
