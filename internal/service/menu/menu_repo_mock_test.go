package menu

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

var _ menuRepo = &menuRepoMock{}

type menuRepoMock struct {
	CreateWeekFunc       func(ctx context.Context, w domain.WeekMenu) (*domain.WeekMenu, error)
	GetWeekFunc          func(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.WeekMenu, error)
	ListWeeksFunc        func(ctx context.Context, tenantID uuid.UUID, f domain.WeekFilter) ([]domain.WeekMenu, error)
	UpdateWeekStatusFunc func(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, from domain.WeekStatus, to domain.WeekStatus, publishedAt *time.Time, now time.Time) (*domain.WeekMenu, error)
	ArchiveStaleFunc     func(ctx context.Context, cutoff time.Time, now time.Time) ([]domain.WeekMenu, error)
	CreateDaysFunc       func(ctx context.Context, days []domain.MenuDay) ([]domain.MenuDay, error)
	ListDaysFunc         func(ctx context.Context, weekID uuid.UUID) ([]domain.MenuDay, error)
	GetDayContextFunc    func(ctx context.Context, tenantID uuid.UUID, dayID uuid.UUID) (*domain.DayContext, error)
	SetDayOpenFunc       func(ctx context.Context, dayID uuid.UUID, isOpen bool, notes *string) (*domain.MenuDay, error)
	GetPublishedDayFunc  func(ctx context.Context, tenantID uuid.UUID, date time.Time) (*domain.MenuDay, error)
	AddItemFunc          func(ctx context.Context, it domain.MenuItem) (*domain.MenuItem, error)
	CreateItemsFunc      func(ctx context.Context, items []domain.MenuItem) error
	GetItemContextFunc   func(ctx context.Context, tenantID uuid.UUID, itemID uuid.UUID) (*domain.ItemContext, error)
	UpdateItemFunc       func(ctx context.Context, itemID uuid.UUID, u domain.ItemUpdate) (*domain.MenuItem, error)
	SetSortOrdersFunc    func(ctx context.Context, dayID uuid.UUID, orderedIDs []uuid.UUID, now time.Time) error
	DeleteItemFunc       func(ctx context.Context, itemID uuid.UUID) error
	ListItemsByDayFunc   func(ctx context.Context, dayID uuid.UUID) ([]domain.MenuItem, error)
	ListItemsByWeekFunc  func(ctx context.Context, weekID uuid.UUID) ([]domain.MenuItem, error)

	calls struct {
		CreateWeek []struct {
			Ctx context.Context
			W   domain.WeekMenu
		}
		GetWeek []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Id       uuid.UUID
		}
		ListWeeks []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			F        domain.WeekFilter
		}
		UpdateWeekStatus []struct {
			Ctx         context.Context
			TenantID    uuid.UUID
			Id          uuid.UUID
			From        domain.WeekStatus
			To          domain.WeekStatus
			PublishedAt *time.Time
			Now         time.Time
		}
		ArchiveStale []struct {
			Ctx    context.Context
			Cutoff time.Time
			Now    time.Time
		}
		CreateDays []struct {
			Ctx  context.Context
			Days []domain.MenuDay
		}
		ListDays []struct {
			Ctx    context.Context
			WeekID uuid.UUID
		}
		GetDayContext []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			DayID    uuid.UUID
		}
		SetDayOpen []struct {
			Ctx    context.Context
			DayID  uuid.UUID
			IsOpen bool
			Notes  *string
		}
		GetPublishedDay []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Date     time.Time
		}
		AddItem []struct {
			Ctx context.Context
			It  domain.MenuItem
		}
		CreateItems []struct {
			Ctx   context.Context
			Items []domain.MenuItem
		}
		GetItemContext []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			ItemID   uuid.UUID
		}
		UpdateItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			U      domain.ItemUpdate
		}
		SetSortOrders []struct {
			Ctx        context.Context
			DayID      uuid.UUID
			OrderedIDs []uuid.UUID
			Now        time.Time
		}
		DeleteItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		ListItemsByDay []struct {
			Ctx   context.Context
			DayID uuid.UUID
		}
		ListItemsByWeek []struct {
			Ctx    context.Context
			WeekID uuid.UUID
		}
	}
	lockCreateWeek       sync.RWMutex
	lockGetWeek          sync.RWMutex
	lockListWeeks        sync.RWMutex
	lockUpdateWeekStatus sync.RWMutex
	lockArchiveStale     sync.RWMutex
	lockCreateDays       sync.RWMutex
	lockListDays         sync.RWMutex
	lockGetDayContext    sync.RWMutex
	lockSetDayOpen       sync.RWMutex
	lockGetPublishedDay  sync.RWMutex
	lockAddItem          sync.RWMutex
	lockCreateItems      sync.RWMutex
	lockGetItemContext   sync.RWMutex
	lockUpdateItem       sync.RWMutex
	lockSetSortOrders    sync.RWMutex
	lockDeleteItem       sync.RWMutex
	lockListItemsByDay   sync.RWMutex
	lockListItemsByWeek  sync.RWMutex
}

func (mock *menuRepoMock) CreateWeek(ctx context.Context, w domain.WeekMenu) (*domain.WeekMenu, error) {
	if mock.CreateWeekFunc == nil {
		panic("menuRepoMock.CreateWeekFunc: method is nil but menuRepo.CreateWeek was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.WeekMenu
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockCreateWeek.Lock()
	mock.calls.CreateWeek = append(mock.calls.CreateWeek, callInfo)
	mock.lockCreateWeek.Unlock()
	return mock.CreateWeekFunc(ctx, w)
}

func (mock *menuRepoMock) CreateWeekCalls() []struct {
	Ctx context.Context
	W   domain.WeekMenu
} {
	var calls []struct {
		Ctx context.Context
		W   domain.WeekMenu
	}
	mock.lockCreateWeek.RLock()
	calls = mock.calls.CreateWeek
	mock.lockCreateWeek.RUnlock()
	return calls
}

func (mock *menuRepoMock) GetWeek(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.WeekMenu, error) {
	if mock.GetWeekFunc == nil {
		panic("menuRepoMock.GetWeekFunc: method is nil but menuRepo.GetWeek was just called")
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
	mock.lockGetWeek.Lock()
	mock.calls.GetWeek = append(mock.calls.GetWeek, callInfo)
	mock.lockGetWeek.Unlock()
	return mock.GetWeekFunc(ctx, tenantID, id)
}

func (mock *menuRepoMock) GetWeekCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Id       uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Id       uuid.UUID
	}
	mock.lockGetWeek.RLock()
	calls = mock.calls.GetWeek
	mock.lockGetWeek.RUnlock()
	return calls
}

func (mock *menuRepoMock) ListWeeks(ctx context.Context, tenantID uuid.UUID, f domain.WeekFilter) ([]domain.WeekMenu, error) {
	if mock.ListWeeksFunc == nil {
		panic("menuRepoMock.ListWeeksFunc: method is nil but menuRepo.ListWeeks was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		F        domain.WeekFilter
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		F:        f,
	}
	mock.lockListWeeks.Lock()
	mock.calls.ListWeeks = append(mock.calls.ListWeeks, callInfo)
	mock.lockListWeeks.Unlock()
	return mock.ListWeeksFunc(ctx, tenantID, f)
}

func (mock *menuRepoMock) ListWeeksCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	F        domain.WeekFilter
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		F        domain.WeekFilter
	}
	mock.lockListWeeks.RLock()
	calls = mock.calls.ListWeeks
	mock.lockListWeeks.RUnlock()
	return calls
}

func (mock *menuRepoMock) UpdateWeekStatus(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, from domain.WeekStatus, to domain.WeekStatus, publishedAt *time.Time, now time.Time) (*domain.WeekMenu, error) {
	if mock.UpdateWeekStatusFunc == nil {
		panic("menuRepoMock.UpdateWeekStatusFunc: method is nil but menuRepo.UpdateWeekStatus was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		TenantID    uuid.UUID
		Id          uuid.UUID
		From        domain.WeekStatus
		To          domain.WeekStatus
		PublishedAt *time.Time
		Now         time.Time
	}{
		Ctx:         ctx,
		TenantID:    tenantID,
		Id:          id,
		From:        from,
		To:          to,
		PublishedAt: publishedAt,
		Now:         now,
	}
	mock.lockUpdateWeekStatus.Lock()
	mock.calls.UpdateWeekStatus = append(mock.calls.UpdateWeekStatus, callInfo)
	mock.lockUpdateWeekStatus.Unlock()
	return mock.UpdateWeekStatusFunc(ctx, tenantID, id, from, to, publishedAt, now)
}

func (mock *menuRepoMock) UpdateWeekStatusCalls() []struct {
	Ctx         context.Context
	TenantID    uuid.UUID
	Id          uuid.UUID
	From        domain.WeekStatus
	To          domain.WeekStatus
	PublishedAt *time.Time
	Now         time.Time
} {
	var calls []struct {
		Ctx         context.Context
		TenantID    uuid.UUID
		Id          uuid.UUID
		From        domain.WeekStatus
		To          domain.WeekStatus
		PublishedAt *time.Time
		Now         time.Time
	}
	mock.lockUpdateWeekStatus.RLock()
	calls = mock.calls.UpdateWeekStatus
	mock.lockUpdateWeekStatus.RUnlock()
	return calls
}

func (mock *menuRepoMock) ArchiveStale(ctx context.Context, cutoff time.Time, now time.Time) ([]domain.WeekMenu, error) {
	if mock.ArchiveStaleFunc == nil {
		panic("menuRepoMock.ArchiveStaleFunc: method is nil but menuRepo.ArchiveStale was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
		Now    time.Time
	}{
		Ctx:    ctx,
		Cutoff: cutoff,
		Now:    now,
	}
	mock.lockArchiveStale.Lock()
	mock.calls.ArchiveStale = append(mock.calls.ArchiveStale, callInfo)
	mock.lockArchiveStale.Unlock()
	return mock.ArchiveStaleFunc(ctx, cutoff, now)
}

func (mock *menuRepoMock) ArchiveStaleCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
	Now    time.Time
} {
	var calls []struct {
		Ctx    context.Context
		Cutoff time.Time
		Now    time.Time
	}
	mock.lockArchiveStale.RLock()
	calls = mock.calls.ArchiveStale
	mock.lockArchiveStale.RUnlock()
	return calls
}

func (mock *menuRepoMock) CreateDays(ctx context.Context, days []domain.MenuDay) ([]domain.MenuDay, error) {
	if mock.CreateDaysFunc == nil {
		panic("menuRepoMock.CreateDaysFunc: method is nil but menuRepo.CreateDays was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days []domain.MenuDay
	}{
		Ctx:  ctx,
		Days: days,
	}
	mock.lockCreateDays.Lock()
	mock.calls.CreateDays = append(mock.calls.CreateDays, callInfo)
	mock.lockCreateDays.Unlock()
	return mock.CreateDaysFunc(ctx, days)
}

func (mock *menuRepoMock) CreateDaysCalls() []struct {
	Ctx  context.Context
	Days []domain.MenuDay
} {
	var calls []struct {
		Ctx  context.Context
		Days []domain.MenuDay
	}
	mock.lockCreateDays.RLock()
	calls = mock.calls.CreateDays
	mock.lockCreateDays.RUnlock()
	return calls
}

func (mock *menuRepoMock) ListDays(ctx context.Context, weekID uuid.UUID) ([]domain.MenuDay, error) {
	if mock.ListDaysFunc == nil {
		panic("menuRepoMock.ListDaysFunc: method is nil but menuRepo.ListDays was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}{
		Ctx:    ctx,
		WeekID: weekID,
	}
	mock.lockListDays.Lock()
	mock.calls.ListDays = append(mock.calls.ListDays, callInfo)
	mock.lockListDays.Unlock()
	return mock.ListDaysFunc(ctx, weekID)
}

func (mock *menuRepoMock) ListDaysCalls() []struct {
	Ctx    context.Context
	WeekID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}
	mock.lockListDays.RLock()
	calls = mock.calls.ListDays
	mock.lockListDays.RUnlock()
	return calls
}

func (mock *menuRepoMock) GetDayContext(ctx context.Context, tenantID uuid.UUID, dayID uuid.UUID) (*domain.DayContext, error) {
	if mock.GetDayContextFunc == nil {
		panic("menuRepoMock.GetDayContextFunc: method is nil but menuRepo.GetDayContext was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		DayID    uuid.UUID
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		DayID:    dayID,
	}
	mock.lockGetDayContext.Lock()
	mock.calls.GetDayContext = append(mock.calls.GetDayContext, callInfo)
	mock.lockGetDayContext.Unlock()
	return mock.GetDayContextFunc(ctx, tenantID, dayID)
}

func (mock *menuRepoMock) GetDayContextCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	DayID    uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		DayID    uuid.UUID
	}
	mock.lockGetDayContext.RLock()
	calls = mock.calls.GetDayContext
	mock.lockGetDayContext.RUnlock()
	return calls
}

func (mock *menuRepoMock) SetDayOpen(ctx context.Context, dayID uuid.UUID, isOpen bool, notes *string) (*domain.MenuDay, error) {
	if mock.SetDayOpenFunc == nil {
		panic("menuRepoMock.SetDayOpenFunc: method is nil but menuRepo.SetDayOpen was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DayID  uuid.UUID
		IsOpen bool
		Notes  *string
	}{
		Ctx:    ctx,
		DayID:  dayID,
		IsOpen: isOpen,
		Notes:  notes,
	}
	mock.lockSetDayOpen.Lock()
	mock.calls.SetDayOpen = append(mock.calls.SetDayOpen, callInfo)
	mock.lockSetDayOpen.Unlock()
	return mock.SetDayOpenFunc(ctx, dayID, isOpen, notes)
}

func (mock *menuRepoMock) SetDayOpenCalls() []struct {
	Ctx    context.Context
	DayID  uuid.UUID
	IsOpen bool
	Notes  *string
} {
	var calls []struct {
		Ctx    context.Context
		DayID  uuid.UUID
		IsOpen bool
		Notes  *string
	}
	mock.lockSetDayOpen.RLock()
	calls = mock.calls.SetDayOpen
	mock.lockSetDayOpen.RUnlock()
	return calls
}

func (mock *menuRepoMock) GetPublishedDay(ctx context.Context, tenantID uuid.UUID, date time.Time) (*domain.MenuDay, error) {
	if mock.GetPublishedDayFunc == nil {
		panic("menuRepoMock.GetPublishedDayFunc: method is nil but menuRepo.GetPublishedDay was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Date     time.Time
	}{
		Ctx:      ctx,
		TenantID: tenantID,
		Date:     date,
	}
	mock.lockGetPublishedDay.Lock()
	mock.calls.GetPublishedDay = append(mock.calls.GetPublishedDay, callInfo)
	mock.lockGetPublishedDay.Unlock()
	return mock.GetPublishedDayFunc(ctx, tenantID, date)
}

func (mock *menuRepoMock) GetPublishedDayCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Date     time.Time
} {
	var calls []struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Date     time.Time
	}
	mock.lockGetPublishedDay.RLock()
	calls = mock.calls.GetPublishedDay
	mock.lockGetPublishedDay.RUnlock()
	return calls
}

func (mock *menuRepoMock) AddItem(ctx context.Context, it domain.MenuItem) (*domain.MenuItem, error) {
	if mock.AddItemFunc == nil {
		panic("menuRepoMock.AddItemFunc: method is nil but menuRepo.AddItem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		It  domain.MenuItem
	}{
		Ctx: ctx,
		It:  it,
	}
	mock.lockAddItem.Lock()
	mock.calls.AddItem = append(mock.calls.AddItem, callInfo)
	mock.lockAddItem.Unlock()
	return mock.AddItemFunc(ctx, it)
}

func (mock *menuRepoMock) AddItemCalls() []struct {
	Ctx context.Context
	It  domain.MenuItem
} {
	var calls []struct {
		Ctx context.Context
		It  domain.MenuItem
	}
	mock.lockAddItem.RLock()
	calls = mock.calls.AddItem
	mock.lockAddItem.RUnlock()
	return calls
}

func (mock *menuRepoMock) CreateItems(ctx context.Context, items []domain.MenuItem) error {
	if mock.CreateItemsFunc == nil {
		panic("menuRepoMock.CreateItemsFunc: method is nil but menuRepo.CreateItems was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Items []domain.MenuItem
	}{
		Ctx:   ctx,
		Items: items,
	}
	mock.lockCreateItems.Lock()
	mock.calls.CreateItems = append(mock.calls.CreateItems, callInfo)
	mock.lockCreateItems.Unlock()
	return mock.CreateItemsFunc(ctx, items)
}

func (mock *menuRepoMock) CreateItemsCalls() []struct {
	Ctx   context.Context
	Items []domain.MenuItem
} {
	var calls []struct {
		Ctx   context.Context
		Items []domain.MenuItem
	}
	mock.lockCreateItems.RLock()
	calls = mock.calls.CreateItems
	mock.lockCreateItems.RUnlock()
	return calls
}

func (mock *menuRepoMock) GetItemContext(ctx context.Context, tenantID uuid.UUID, itemID uuid.UUID) (*domain.ItemContext, error) {
	if mock.GetItemContextFunc == nil {
		panic("menuRepoMock.GetItemContextFunc: method is nil but menuRepo.GetItemContext was just called")
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

func (mock *menuRepoMock) GetItemContextCalls() []struct {
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

func (mock *menuRepoMock) UpdateItem(ctx context.Context, itemID uuid.UUID, u domain.ItemUpdate) (*domain.MenuItem, error) {
	if mock.UpdateItemFunc == nil {
		panic("menuRepoMock.UpdateItemFunc: method is nil but menuRepo.UpdateItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		U      domain.ItemUpdate
	}{
		Ctx:    ctx,
		ItemID: itemID,
		U:      u,
	}
	mock.lockUpdateItem.Lock()
	mock.calls.UpdateItem = append(mock.calls.UpdateItem, callInfo)
	mock.lockUpdateItem.Unlock()
	return mock.UpdateItemFunc(ctx, itemID, u)
}

func (mock *menuRepoMock) UpdateItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	U      domain.ItemUpdate
} {
	var calls []struct {
		Ctx    context.Context
		ItemID uuid.UUID
		U      domain.ItemUpdate
	}
	mock.lockUpdateItem.RLock()
	calls = mock.calls.UpdateItem
	mock.lockUpdateItem.RUnlock()
	return calls
}

func (mock *menuRepoMock) SetSortOrders(ctx context.Context, dayID uuid.UUID, orderedIDs []uuid.UUID, now time.Time) error {
	if mock.SetSortOrdersFunc == nil {
		panic("menuRepoMock.SetSortOrdersFunc: method is nil but menuRepo.SetSortOrders was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DayID      uuid.UUID
		OrderedIDs []uuid.UUID
		Now        time.Time
	}{
		Ctx:        ctx,
		DayID:      dayID,
		OrderedIDs: orderedIDs,
		Now:        now,
	}
	mock.lockSetSortOrders.Lock()
	mock.calls.SetSortOrders = append(mock.calls.SetSortOrders, callInfo)
	mock.lockSetSortOrders.Unlock()
	return mock.SetSortOrdersFunc(ctx, dayID, orderedIDs, now)
}

func (mock *menuRepoMock) SetSortOrdersCalls() []struct {
	Ctx        context.Context
	DayID      uuid.UUID
	OrderedIDs []uuid.UUID
	Now        time.Time
} {
	var calls []struct {
		Ctx        context.Context
		DayID      uuid.UUID
		OrderedIDs []uuid.UUID
		Now        time.Time
	}
	mock.lockSetSortOrders.RLock()
	calls = mock.calls.SetSortOrders
	mock.lockSetSortOrders.RUnlock()
	return calls
}

func (mock *menuRepoMock) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if mock.DeleteItemFunc == nil {
		panic("menuRepoMock.DeleteItemFunc: method is nil but menuRepo.DeleteItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		ItemID: itemID,
	}
	mock.lockDeleteItem.Lock()
	mock.calls.DeleteItem = append(mock.calls.DeleteItem, callInfo)
	mock.lockDeleteItem.Unlock()
	return mock.DeleteItemFunc(ctx, itemID)
}

func (mock *menuRepoMock) DeleteItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}
	mock.lockDeleteItem.RLock()
	calls = mock.calls.DeleteItem
	mock.lockDeleteItem.RUnlock()
	return calls
}

func (mock *menuRepoMock) ListItemsByDay(ctx context.Context, dayID uuid.UUID) ([]domain.MenuItem, error) {
	if mock.ListItemsByDayFunc == nil {
		panic("menuRepoMock.ListItemsByDayFunc: method is nil but menuRepo.ListItemsByDay was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		DayID uuid.UUID
	}{
		Ctx:   ctx,
		DayID: dayID,
	}
	mock.lockListItemsByDay.Lock()
	mock.calls.ListItemsByDay = append(mock.calls.ListItemsByDay, callInfo)
	mock.lockListItemsByDay.Unlock()
	return mock.ListItemsByDayFunc(ctx, dayID)
}

func (mock *menuRepoMock) ListItemsByDayCalls() []struct {
	Ctx   context.Context
	DayID uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		DayID uuid.UUID
	}
	mock.lockListItemsByDay.RLock()
	calls = mock.calls.ListItemsByDay
	mock.lockListItemsByDay.RUnlock()
	return calls
}

func (mock *menuRepoMock) ListItemsByWeek(ctx context.Context, weekID uuid.UUID) ([]domain.MenuItem, error) {
	if mock.ListItemsByWeekFunc == nil {
		panic("menuRepoMock.ListItemsByWeekFunc: method is nil but menuRepo.ListItemsByWeek was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}{
		Ctx:    ctx,
		WeekID: weekID,
	}
	mock.lockListItemsByWeek.Lock()
	mock.calls.ListItemsByWeek = append(mock.calls.ListItemsByWeek, callInfo)
	mock.lockListItemsByWeek.Unlock()
	return mock.ListItemsByWeekFunc(ctx, weekID)
}

func (mock *menuRepoMock) ListItemsByWeekCalls() []struct {
	Ctx    context.Context
	WeekID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		WeekID uuid.UUID
	}
	mock.lockListItemsByWeek.RLock()
	calls = mock.calls.ListItemsByWeek
	mock.lockListItemsByWeek.RUnlock()
	return calls
}
