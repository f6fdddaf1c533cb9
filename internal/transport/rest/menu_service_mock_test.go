package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/internal/service/menu"
)

var _ menuService = &menuServiceMock{}

type menuServiceMock struct {
	CreateWeekFunc   func(ctx context.Context, input menu.CreateWeekInput) (*domain.WeekMenu, error)
	CopyWeekFunc     func(ctx context.Context, input menu.CopyWeekInput) (*domain.WeekMenu, error)
	PublishFunc      func(ctx context.Context, weekID uuid.UUID) (*domain.PublishResult, error)
	ArchiveFunc      func(ctx context.Context, weekID uuid.UUID) (*domain.WeekMenu, error)
	RestoreFunc      func(ctx context.Context, weekID uuid.UUID) (*domain.WeekMenu, error)
	SetDayOpenFunc   func(ctx context.Context, input menu.SetDayOpenInput) (*domain.MenuDay, error)
	AddItemFunc      func(ctx context.Context, input menu.AddItemInput) (*domain.MenuItem, error)
	UpdateItemFunc   func(ctx context.Context, input menu.UpdateItemInput) (*domain.MenuItem, error)
	ReorderItemsFunc func(ctx context.Context, input menu.ReorderItemsInput) ([]domain.MenuItem, error)
	RemoveItemFunc   func(ctx context.Context, itemID uuid.UUID) (*domain.RemoveItemResult, error)
	GetWeekFunc      func(ctx context.Context, weekID uuid.UUID) (*domain.WeekMenu, error)
	ListWeeksFunc    func(ctx context.Context, year *int) ([]domain.WeekMenu, error)
	GetTodayFunc     func(ctx context.Context) (*domain.MenuDay, error)
	GetHistoryFunc   func(ctx context.Context, weekID uuid.UUID) ([]domain.AuditRecord, error)

	calls struct {
		CreateWeek []struct {
			Ctx   context.Context
			Input menu.CreateWeekInput
		}
		CopyWeek []struct {
			Ctx   context.Context
			Input menu.CopyWeekInput
		}
		Publish []struct {
			Ctx    context.Context
			WeekID uuid.UUID
		}
		Archive []struct {
			Ctx    context.Context
			WeekID uuid.UUID
		}
		Restore []struct {
			Ctx    context.Context
			WeekID uuid.UUID
		}
		SetDayOpen []struct {
			Ctx   context.Context
			Input menu.SetDayOpenInput
		}
		AddItem []struct {
			Ctx   context.Context
			Input menu.AddItemInput
		}
		UpdateItem []struct {
			Ctx   context.Context
			Input menu.UpdateItemInput
		}
		ReorderItems []struct {
			Ctx   context.Context
			Input menu.ReorderItemsInput
		}
		RemoveItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		GetWeek []struct {
			Ctx    context.Context
			WeekID uuid.UUID
		}
		ListWeeks []struct {
			Ctx  context.Context
			Year *int
		}
		GetToday []struct {
			Ctx context.Context
		}
		GetHistory []struct {
			Ctx    context.Context
			WeekID uuid.UUID
		}
	}
	lockCreateWeek   sync.RWMutex
	lockCopyWeek     sync.RWMutex
	lockPublish      sync.RWMutex
	lockArchive      sync.RWMutex
	lockRestore      sync.RWMutex
	lockSetDayOpen   sync.RWMutex
	lockAddItem      sync.RWMutex
	lockUpdateItem   sync.RWMutex
	lockReorderItems sync.RWMutex
	lockRemoveItem   sync.RWMutex
	lockGetWeek      sync.RWMutex
	lockListWeeks    sync.RWMutex
	lockGetToday     sync.RWMutex
	lockGetHistory   sync.RWMutex
}

func (mock *menuServiceMock) CreateWeek(ctx context.Context, input menu.CreateWeekInput) (*domain.WeekMenu, error) {
	if mock.CreateWeekFunc == nil {
		panic("menuServiceMock.CreateWeekFunc: method is nil but menuService.CreateWeek was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input menu.CreateWeekInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateWeek.Lock()
	mock.calls.CreateWeek = append(mock.calls.CreateWeek, callInfo)
	mock.lockCreateWeek.Unlock()
	return mock.CreateWeekFunc(ctx, input)
}

func (mock *menuServiceMock) CreateWeekCalls() []struct {
	Ctx   context.Context
	Input menu.CreateWeekInput
} {
	var calls []struct {
		Ctx   context.Context
		Input menu.CreateWeekInput
	}
	mock.lockCreateWeek.RLock()
	calls = mock.calls.CreateWeek
	mock.lockCreateWeek.RUnlock()
	return calls
}

func (mock *menuServiceMock) CopyWeek(ctx context.Context, input menu.CopyWeekInput) (*domain.WeekMenu, error) {
	if mock.CopyWeekFunc == nil {
		panic("menuServiceMock.CopyWeekFunc: method is nil but menuService.CopyWeek was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input menu.CopyWeekInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCopyWeek.Lock()
	mock.calls.CopyWeek = append(mock.calls.CopyWeek, callInfo)
	mock.lockCopyWeek.Unlock()
	return mock.CopyWeekFunc(ctx, input)
}

func (mock *menuServiceMock) CopyWeekCalls() []struct {
	Ctx   context.Context
	Input menu.CopyWeekInput
} {
	var calls []struct {
		Ctx   context.Context
		Input menu.CopyWeekInput
	}
	mock.lockCopyWeek.RLock()
	calls = mock.calls.CopyWeek
	mock.lockCopyWeek.RUnlock()
	return calls
}

func (mock *menuServiceMock) Publish(ctx context.Context, weekID uuid.UUID) (*domain.PublishResult, error) {
	if mock.PublishFunc == nil {
		panic("menuServiceMock.PublishFunc: method is nil but menuService.Publish was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}{
		Ctx:    ctx,
		WeekID: weekID,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, weekID)
}

func (mock *menuServiceMock) PublishCalls() []struct {
	Ctx    context.Context
	WeekID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}
	mock.lockPublish.RLock()
	calls = mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}

func (mock *menuServiceMock) Archive(ctx context.Context, weekID uuid.UUID) (*domain.WeekMenu, error) {
	if mock.ArchiveFunc == nil {
		panic("menuServiceMock.ArchiveFunc: method is nil but menuService.Archive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}{
		Ctx:    ctx,
		WeekID: weekID,
	}
	mock.lockArchive.Lock()
	mock.calls.Archive = append(mock.calls.Archive, callInfo)
	mock.lockArchive.Unlock()
	return mock.ArchiveFunc(ctx, weekID)
}

func (mock *menuServiceMock) ArchiveCalls() []struct {
	Ctx    context.Context
	WeekID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}
	mock.lockArchive.RLock()
	calls = mock.calls.Archive
	mock.lockArchive.RUnlock()
	return calls
}

func (mock *menuServiceMock) Restore(ctx context.Context, weekID uuid.UUID) (*domain.WeekMenu, error) {
	if mock.RestoreFunc == nil {
		panic("menuServiceMock.RestoreFunc: method is nil but menuService.Restore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}{
		Ctx:    ctx,
		WeekID: weekID,
	}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, weekID)
}

func (mock *menuServiceMock) RestoreCalls() []struct {
	Ctx    context.Context
	WeekID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}
	mock.lockRestore.RLock()
	calls = mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *menuServiceMock) SetDayOpen(ctx context.Context, input menu.SetDayOpenInput) (*domain.MenuDay, error) {
	if mock.SetDayOpenFunc == nil {
		panic("menuServiceMock.SetDayOpenFunc: method is nil but menuService.SetDayOpen was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input menu.SetDayOpenInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSetDayOpen.Lock()
	mock.calls.SetDayOpen = append(mock.calls.SetDayOpen, callInfo)
	mock.lockSetDayOpen.Unlock()
	return mock.SetDayOpenFunc(ctx, input)
}

func (mock *menuServiceMock) SetDayOpenCalls() []struct {
	Ctx   context.Context
	Input menu.SetDayOpenInput
} {
	var calls []struct {
		Ctx   context.Context
		Input menu.SetDayOpenInput
	}
	mock.lockSetDayOpen.RLock()
	calls = mock.calls.SetDayOpen
	mock.lockSetDayOpen.RUnlock()
	return calls
}

func (mock *menuServiceMock) AddItem(ctx context.Context, input menu.AddItemInput) (*domain.MenuItem, error) {
	if mock.AddItemFunc == nil {
		panic("menuServiceMock.AddItemFunc: method is nil but menuService.AddItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input menu.AddItemInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddItem.Lock()
	mock.calls.AddItem = append(mock.calls.AddItem, callInfo)
	mock.lockAddItem.Unlock()
	return mock.AddItemFunc(ctx, input)
}

func (mock *menuServiceMock) AddItemCalls() []struct {
	Ctx   context.Context
	Input menu.AddItemInput
} {
	var calls []struct {
		Ctx   context.Context
		Input menu.AddItemInput
	}
	mock.lockAddItem.RLock()
	calls = mock.calls.AddItem
	mock.lockAddItem.RUnlock()
	return calls
}

func (mock *menuServiceMock) UpdateItem(ctx context.Context, input menu.UpdateItemInput) (*domain.MenuItem, error) {
	if mock.UpdateItemFunc == nil {
		panic("menuServiceMock.UpdateItemFunc: method is nil but menuService.UpdateItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input menu.UpdateItemInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateItem.Lock()
	mock.calls.UpdateItem = append(mock.calls.UpdateItem, callInfo)
	mock.lockUpdateItem.Unlock()
	return mock.UpdateItemFunc(ctx, input)
}

func (mock *menuServiceMock) UpdateItemCalls() []struct {
	Ctx   context.Context
	Input menu.UpdateItemInput
} {
	var calls []struct {
		Ctx   context.Context
		Input menu.UpdateItemInput
	}
	mock.lockUpdateItem.RLock()
	calls = mock.calls.UpdateItem
	mock.lockUpdateItem.RUnlock()
	return calls
}

func (mock *menuServiceMock) ReorderItems(ctx context.Context, input menu.ReorderItemsInput) ([]domain.MenuItem, error) {
	if mock.ReorderItemsFunc == nil {
		panic("menuServiceMock.ReorderItemsFunc: method is nil but menuService.ReorderItems was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input menu.ReorderItemsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockReorderItems.Lock()
	mock.calls.ReorderItems = append(mock.calls.ReorderItems, callInfo)
	mock.lockReorderItems.Unlock()
	return mock.ReorderItemsFunc(ctx, input)
}

func (mock *menuServiceMock) ReorderItemsCalls() []struct {
	Ctx   context.Context
	Input menu.ReorderItemsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input menu.ReorderItemsInput
	}
	mock.lockReorderItems.RLock()
	calls = mock.calls.ReorderItems
	mock.lockReorderItems.RUnlock()
	return calls
}

func (mock *menuServiceMock) RemoveItem(ctx context.Context, itemID uuid.UUID) (*domain.RemoveItemResult, error) {
	if mock.RemoveItemFunc == nil {
		panic("menuServiceMock.RemoveItemFunc: method is nil but menuService.RemoveItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		ItemID: itemID,
	}
	mock.lockRemoveItem.Lock()
	mock.calls.RemoveItem = append(mock.calls.RemoveItem, callInfo)
	mock.lockRemoveItem.Unlock()
	return mock.RemoveItemFunc(ctx, itemID)
}

func (mock *menuServiceMock) RemoveItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}
	mock.lockRemoveItem.RLock()
	calls = mock.calls.RemoveItem
	mock.lockRemoveItem.RUnlock()
	return calls
}

func (mock *menuServiceMock) GetWeek(ctx context.Context, weekID uuid.UUID) (*domain.WeekMenu, error) {
	if mock.GetWeekFunc == nil {
		panic("menuServiceMock.GetWeekFunc: method is nil but menuService.GetWeek was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}{
		Ctx:    ctx,
		WeekID: weekID,
	}
	mock.lockGetWeek.Lock()
	mock.calls.GetWeek = append(mock.calls.GetWeek, callInfo)
	mock.lockGetWeek.Unlock()
	return mock.GetWeekFunc(ctx, weekID)
}

func (mock *menuServiceMock) GetWeekCalls() []struct {
	Ctx    context.Context
	WeekID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}
	mock.lockGetWeek.RLock()
	calls = mock.calls.GetWeek
	mock.lockGetWeek.RUnlock()
	return calls
}

func (mock *menuServiceMock) ListWeeks(ctx context.Context, year *int) ([]domain.WeekMenu, error) {
	if mock.ListWeeksFunc == nil {
		panic("menuServiceMock.ListWeeksFunc: method is nil but menuService.ListWeeks was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Year *int
	}{
		Ctx:  ctx,
		Year: year,
	}
	mock.lockListWeeks.Lock()
	mock.calls.ListWeeks = append(mock.calls.ListWeeks, callInfo)
	mock.lockListWeeks.Unlock()
	return mock.ListWeeksFunc(ctx, year)
}

func (mock *menuServiceMock) ListWeeksCalls() []struct {
	Ctx  context.Context
	Year *int
} {
	var calls []struct {
		Ctx  context.Context
		Year *int
	}
	mock.lockListWeeks.RLock()
	calls = mock.calls.ListWeeks
	mock.lockListWeeks.RUnlock()
	return calls
}

func (mock *menuServiceMock) GetToday(ctx context.Context) (*domain.MenuDay, error) {
	if mock.GetTodayFunc == nil {
		panic("menuServiceMock.GetTodayFunc: method is nil but menuService.GetToday was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetToday.Lock()
	mock.calls.GetToday = append(mock.calls.GetToday, callInfo)
	mock.lockGetToday.Unlock()
	return mock.GetTodayFunc(ctx)
}

func (mock *menuServiceMock) GetTodayCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetToday.RLock()
	calls = mock.calls.GetToday
	mock.lockGetToday.RUnlock()
	return calls
}

func (mock *menuServiceMock) GetHistory(ctx context.Context, weekID uuid.UUID) ([]domain.AuditRecord, error) {
	if mock.GetHistoryFunc == nil {
		panic("menuServiceMock.GetHistoryFunc: method is nil but menuService.GetHistory was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}{
		Ctx:    ctx,
		WeekID: weekID,
	}
	mock.lockGetHistory.Lock()
	mock.calls.GetHistory = append(mock.calls.GetHistory, callInfo)
	mock.lockGetHistory.Unlock()
	return mock.GetHistoryFunc(ctx, weekID)
}

func (mock *menuServiceMock) GetHistoryCalls() []struct {
	Ctx    context.Context
	WeekID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}
	mock.lockGetHistory.RLock()
	calls = mock.calls.GetHistory
	mock.lockGetHistory.RUnlock()
	return calls
}
