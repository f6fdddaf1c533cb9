package menu

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/pkg/ctxutil"
)

// SetDayOpen opens or closes a day. It is allowed on DRAFT and PUBLISHED
// weeks without edit mode; ARCHIVED weeks are read-only.
func (s *Service) SetDayOpen(ctx context.Context, input SetDayOpenInput) (*domain.MenuDay, error) {
	p, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var day *domain.MenuDay
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		dc, getErr := s.menus.GetDayContext(txCtx, tenantID, input.DayID)
		if getErr != nil {
			return fmt.Errorf("get day: %w", getErr)
		}
		if dc.WeekStatus == domain.WeekStatusArchived {
			return domain.NewConflictError("week menu is archived and read-only")
		}

		var setErr error
		day, setErr = s.menus.SetDayOpen(txCtx, input.DayID, input.IsOpen, input.Notes)
		if setErr != nil {
			return fmt.Errorf("set day open: %w", setErr)
		}

		changes := map[string]any{
			"week_menu_id": dc.WeekMenuID.String(),
			"is_open":      map[string]any{"old": dc.IsOpen, "new": input.IsOpen},
		}
		if input.Notes != nil {
			changes["notes"] = map[string]any{"new": *input.Notes}
		}
		return s.logAudit(txCtx, s.record(p, tenantID, domain.EntityTypeMenuDay, day.ID, domain.AuditActionUpdate, changes))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "menu day updated",
		slog.String("tenant_id", tenantID.String()),
		slog.String("menu_day_id", day.ID.String()),
		slog.Bool("is_open", day.IsOpen),
	)
	return day, nil
}

// AddItem places a dish on a day at the end of its order.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.MenuItem, error) {
	p, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var item *domain.MenuItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		dc, getErr := s.menus.GetDayContext(txCtx, tenantID, input.DayID)
		if getErr != nil {
			return fmt.Errorf("get day: %w", getErr)
		}
		if err := domain.CheckEditable(dc.WeekStatus, ctxutil.EditModeFromCtx(ctx)); err != nil {
			return err
		}

		exists, existsErr := s.dishes.Exists(txCtx, tenantID, input.DishID)
		if existsErr != nil {
			return fmt.Errorf("check dish: %w", existsErr)
		}
		if !exists {
			return fmt.Errorf("dish %s: %w", input.DishID, domain.ErrNotFound)
		}

		now := s.now()
		var addErr error
		item, addErr = s.menus.AddItem(txCtx, domain.MenuItem{
			ID:        uuid.New(),
			MenuDayID: input.DayID,
			DishID:    input.DishID,
			Price:     input.Price,
			Category:  input.Category,
			Status:    domain.ItemStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if addErr != nil {
			return fmt.Errorf("add item: %w", addErr)
		}

		return s.logAudit(txCtx, s.record(p, tenantID, domain.EntityTypeMenuItem, item.ID, domain.AuditActionCreate,
			map[string]any{
				"week_menu_id": dc.WeekMenuID.String(),
				"menu_day_id":  dc.MenuDayID.String(),
				"dish_id":      input.DishID.String(),
				"price":        input.Price,
			}))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "menu item added",
		slog.String("tenant_id", tenantID.String()),
		slog.String("menu_item_id", item.ID.String()),
		slog.String("dish_id", item.DishID.String()),
	)
	return item, nil
}

// UpdateItem changes price, category, status or position of one item.
// A sortOrder change touches only this row.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.MenuItem, error) {
	p, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var item *domain.MenuItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ic, getErr := s.menus.GetItemContext(txCtx, tenantID, input.ItemID)
		if getErr != nil {
			return fmt.Errorf("get item: %w", getErr)
		}
		if err := domain.CheckEditable(ic.Day.WeekStatus, ctxutil.EditModeFromCtx(ctx)); err != nil {
			return err
		}

		changes := map[string]any{"week_menu_id": ic.Day.WeekMenuID.String()}
		if input.Price != nil {
			changes["price"] = map[string]any{"old": ic.Item.Price, "new": *input.Price}
		}
		if input.Category != nil {
			changes["category"] = map[string]any{"old": ic.Item.Category.String(), "new": input.Category.String()}
		}
		if input.Status != nil {
			changes["status"] = map[string]any{"old": ic.Item.Status.String(), "new": input.Status.String()}
		}
		if input.SortOrder != nil {
			changes["sort_order"] = map[string]any{"old": ic.Item.SortOrder, "new": *input.SortOrder}
		}

		var updErr error
		item, updErr = s.menus.UpdateItem(txCtx, input.ItemID, domain.ItemUpdate{
			Price:     input.Price,
			Category:  input.Category,
			Status:    input.Status,
			SortOrder: input.SortOrder,
			UpdatedAt: s.now(),
		})
		if updErr != nil {
			return fmt.Errorf("update item: %w", updErr)
		}
		return s.logAudit(txCtx, s.record(p, tenantID, domain.EntityTypeMenuItem, item.ID, domain.AuditActionUpdate, changes))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "menu item updated",
		slog.String("tenant_id", tenantID.String()),
		slog.String("menu_item_id", item.ID.String()),
	)
	return item, nil
}

// ReorderItems reassigns positions 1..n of a day's items. ItemIDs must be a
// permutation of exactly the day's items.
func (s *Service) ReorderItems(ctx context.Context, input ReorderItemsInput) ([]domain.MenuItem, error) {
	p, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var items []domain.MenuItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		dc, getErr := s.menus.GetDayContext(txCtx, tenantID, input.DayID)
		if getErr != nil {
			return fmt.Errorf("get day: %w", getErr)
		}
		if err := domain.CheckEditable(dc.WeekStatus, ctxutil.EditModeFromCtx(ctx)); err != nil {
			return err
		}

		current, listErr := s.menus.ListItemsByDay(txCtx, input.DayID)
		if listErr != nil {
			return fmt.Errorf("list items: %w", listErr)
		}
		if !isPermutation(current, input.ItemIDs) {
			return domain.NewValidationError("item_ids", "must list exactly the items of the day")
		}

		if err := s.menus.SetSortOrders(txCtx, input.DayID, input.ItemIDs, s.now()); err != nil {
			return fmt.Errorf("reorder items: %w", err)
		}

		var reloadErr error
		items, reloadErr = s.menus.ListItemsByDay(txCtx, input.DayID)
		if reloadErr != nil {
			return fmt.Errorf("list items: %w", reloadErr)
		}

		order := make([]string, len(input.ItemIDs))
		for i, id := range input.ItemIDs {
			order[i] = id.String()
		}
		return s.logAudit(txCtx, s.record(p, tenantID, domain.EntityTypeMenuDay, dc.MenuDayID, domain.AuditActionUpdate,
			map[string]any{
				"week_menu_id": dc.WeekMenuID.String(),
				"order":        order,
			}))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "menu items reordered",
		slog.String("tenant_id", tenantID.String()),
		slog.String("menu_day_id", input.DayID.String()),
		slog.Int("items", len(items)),
	)
	return items, nil
}

// RemoveItem deletes an item and its votes in one transaction.
func (s *Service) RemoveItem(ctx context.Context, itemID uuid.UUID) (*domain.RemoveItemResult, error) {
	p, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}

	res := &domain.RemoveItemResult{ItemID: itemID}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ic, getErr := s.menus.GetItemContext(txCtx, tenantID, itemID)
		if getErr != nil {
			return fmt.Errorf("get item: %w", getErr)
		}
		if err := domain.CheckEditable(ic.Day.WeekStatus, ctxutil.EditModeFromCtx(ctx)); err != nil {
			return err
		}

		removed, voteErr := s.votes.DeleteByItem(txCtx, itemID)
		if voteErr != nil {
			return fmt.Errorf("delete votes: %w", voteErr)
		}
		if err := s.menus.DeleteItem(txCtx, itemID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		res.RemovedVotes = removed

		return s.logAudit(txCtx, s.record(p, tenantID, domain.EntityTypeMenuItem, itemID, domain.AuditActionDelete,
			map[string]any{
				"week_menu_id":  ic.Day.WeekMenuID.String(),
				"dish_id":       ic.Item.DishID.String(),
				"removed_votes": removed,
			}))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "menu item removed",
		slog.String("tenant_id", tenantID.String()),
		slog.String("menu_item_id", itemID.String()),
		slog.Int("removed_votes", res.RemovedVotes),
	)
	return res, nil
}

func isPermutation(items []domain.MenuItem, ids []uuid.UUID) bool {
	if len(items) != len(ids) {
		return false
	}
	want := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		want[it.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := want[id]; !ok {
			return false
		}
		delete(want, id)
	}
	return len(want) == 0
}
