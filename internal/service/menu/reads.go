package menu

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/pkg/clock"
)

// HistoryLimit caps GetHistory.
const HistoryLimit = 100

// GetWeek returns a week with its days, items and dishes. Non-admins only
// see PUBLISHED weeks; anything else is reported as not found.
func (s *Service) GetWeek(ctx context.Context, weekID uuid.UUID) (*domain.WeekMenu, error) {
	p, tenantID, err := scope(ctx)
	if err != nil {
		return nil, err
	}

	week, err := s.menus.GetWeek(ctx, tenantID, weekID)
	if err != nil {
		return nil, fmt.Errorf("get week: %w", err)
	}
	if !p.IsAdmin() && week.Status != domain.WeekStatusPublished {
		return nil, fmt.Errorf("week menu %s: %w", weekID, domain.ErrNotFound)
	}

	days, err := s.menus.ListDays(ctx, weekID)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	items, err := s.menus.ListItemsByWeek(ctx, weekID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if err := s.attachDishes(ctx, tenantID, items); err != nil {
		return nil, err
	}

	byDay := make(map[uuid.UUID][]domain.MenuItem, len(days))
	for _, it := range items {
		byDay[it.MenuDayID] = append(byDay[it.MenuDayID], it)
	}
	for i := range days {
		days[i].Items = byDay[days[i].ID]
		if days[i].Items == nil {
			days[i].Items = []domain.MenuItem{}
		}
	}
	week.Days = days
	return week, nil
}

// ListWeeks returns the tenant's weeks, newest first. Non-admins only see
// PUBLISHED weeks.
func (s *Service) ListWeeks(ctx context.Context, year *int) ([]domain.WeekMenu, error) {
	p, tenantID, err := scope(ctx)
	if err != nil {
		return nil, err
	}

	f := domain.WeekFilter{Year: year}
	if !p.IsAdmin() {
		f.Statuses = []domain.WeekStatus{domain.WeekStatusPublished}
	}
	weeks, err := s.menus.ListWeeks(ctx, tenantID, f)
	if err != nil {
		return nil, fmt.Errorf("list weeks: %w", err)
	}
	return weeks, nil
}

// GetToday returns today's day (in the tenant's time zone) of the published
// week, with items and dishes.
func (s *Service) GetToday(ctx context.Context) (*domain.MenuDay, error) {
	_, tenantID, err := scope(ctx)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	today := clock.Today(s.clock.Now(), tenant.Location())

	day, err := s.menus.GetPublishedDay(ctx, tenantID, today)
	if err != nil {
		return nil, fmt.Errorf("get today: %w", err)
	}
	items, err := s.menus.ListItemsByDay(ctx, day.ID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if err := s.attachDishes(ctx, tenantID, items); err != nil {
		return nil, err
	}
	day.Items = items
	return day, nil
}

// GetHistory returns the audit trail of a week and everything on it.
func (s *Service) GetHistory(ctx context.Context, weekID uuid.UUID) ([]domain.AuditRecord, error) {
	_, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.menus.GetWeek(ctx, tenantID, weekID); err != nil {
		return nil, fmt.Errorf("get week: %w", err)
	}

	records, err := s.audit.ListForWeek(ctx, tenantID, weekID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("week history: %w", err)
	}
	return records, nil
}

func (s *Service) attachDishes(ctx context.Context, tenantID uuid.UUID, items []domain.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.DishID]; !ok {
			seen[it.DishID] = struct{}{}
			ids = append(ids, it.DishID)
		}
	}

	dishes, err := s.dishes.GetByIDs(ctx, tenantID, ids)
	if err != nil {
		return fmt.Errorf("load dishes: %w", err)
	}
	byID := make(map[uuid.UUID]*domain.Dish, len(dishes))
	for i := range dishes {
		byID[dishes[i].ID] = &dishes[i]
	}
	for i := range items {
		items[i].Dish = byID[items[i].DishID]
	}
	return nil
}
