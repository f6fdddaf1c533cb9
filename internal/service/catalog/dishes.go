package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

// CreateDish adds a dish to the tenant's catalog.
func (s *Service) CreateDish(ctx context.Context, input CreateDishInput) (*domain.Dish, error) {
	p, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	dish := domain.Dish{
		ID:          uuid.New(),
		TenantID:    tenantID,
		Title:       domain.NormalizeTitle(input.Title),
		Description: trimOrNil(input.Description),
		ImageRef:    trimOrNil(input.ImageRef),
		Allergens:   domain.NormalizeLabelSet(input.Allergens),
		Tags:        domain.NormalizeLabelSet(input.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *domain.Dish
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.dishes.Create(txCtx, dish)
		if createErr != nil {
			return fmt.Errorf("create dish: %w", createErr)
		}
		return s.logAudit(txCtx, p, tenantID, created.ID, domain.AuditActionCreate, map[string]any{
			"title": map[string]any{"new": created.Title},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dish created",
		slog.String("tenant_id", tenantID.String()),
		slog.String("dish_id", created.ID.String()),
	)
	return created, nil
}

// UpdateDish applies a partial update.
func (s *Service) UpdateDish(ctx context.Context, input UpdateDishInput) (*domain.Dish, error) {
	p, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	upd := domain.DishUpdate{UpdatedAt: s.clock.Now().UTC()}
	changes := map[string]any{}
	if input.Title != nil {
		t := domain.NormalizeTitle(*input.Title)
		upd.Title = &t
		changes["title"] = map[string]any{"new": t}
	}
	if input.Description != nil {
		d := trimmed(*input.Description)
		upd.Description = &d
		changes["description"] = map[string]any{"new": d}
	}
	if input.ImageRef != nil {
		ref := trimmed(*input.ImageRef)
		upd.ImageRef = &ref
		changes["image_ref"] = map[string]any{"new": ref}
	}
	if input.Allergens != nil {
		upd.Allergens = domain.NormalizeLabelSet(input.Allergens)
		changes["allergens"] = map[string]any{"new": upd.Allergens}
	}
	if input.Tags != nil {
		upd.Tags = domain.NormalizeLabelSet(input.Tags)
		changes["tags"] = map[string]any{"new": upd.Tags}
	}

	var updated *domain.Dish
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updErr error
		updated, updErr = s.dishes.Update(txCtx, tenantID, input.DishID, upd)
		if updErr != nil {
			return fmt.Errorf("update dish: %w", updErr)
		}
		return s.logAudit(txCtx, p, tenantID, updated.ID, domain.AuditActionUpdate, changes)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dish updated",
		slog.String("tenant_id", tenantID.String()),
		slog.String("dish_id", updated.ID.String()),
	)
	return updated, nil
}

// DuplicateDish copies a dish under a new id with " (copy)" appended to its
// title. Menu placements and votes are not copied.
func (s *Service) DuplicateDish(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error) {
	p, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}

	src, err := s.dishes.GetByID(ctx, tenantID, dishID)
	if err != nil {
		return nil, fmt.Errorf("get dish: %w", err)
	}

	now := s.clock.Now().UTC()
	dup := *src
	dup.ID = uuid.New()
	dup.Title = copyTitle(src.Title)
	dup.Allergens = append([]string{}, src.Allergens...)
	dup.Tags = append([]string{}, src.Tags...)
	dup.CreatedAt = now
	dup.UpdatedAt = now

	var created *domain.Dish
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.dishes.Create(txCtx, dup)
		if createErr != nil {
			return fmt.Errorf("duplicate dish: %w", createErr)
		}
		return s.logAudit(txCtx, p, tenantID, created.ID, domain.AuditActionCopy, map[string]any{
			"source_dish_id": src.ID.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dish duplicated",
		slog.String("tenant_id", tenantID.String()),
		slog.String("source_dish_id", src.ID.String()),
		slog.String("dish_id", created.ID.String()),
	)
	return created, nil
}

// DeleteDish removes a dish together with every menu item serving it and
// every vote on those items, in one transaction. Callers show DishUsage as
// the warning beforehand.
func (s *Service) DeleteDish(ctx context.Context, dishID uuid.UUID) (*DeleteDishResult, error) {
	p, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}

	res := &DeleteDishResult{DishID: dishID}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		dish, getErr := s.dishes.GetByID(txCtx, tenantID, dishID)
		if getErr != nil {
			return fmt.Errorf("get dish: %w", getErr)
		}

		votes, voteErr := s.votes.DeleteByDish(txCtx, dishID)
		if voteErr != nil {
			return fmt.Errorf("delete votes: %w", voteErr)
		}
		items, itemErr := s.menus.DeleteItemsByDish(txCtx, dishID)
		if itemErr != nil {
			return fmt.Errorf("delete menu items: %w", itemErr)
		}
		if delErr := s.dishes.Delete(txCtx, tenantID, dishID); delErr != nil {
			return fmt.Errorf("delete dish: %w", delErr)
		}

		res.RemovedVotes = votes
		res.RemovedItems = int(items)
		return s.logAudit(txCtx, p, tenantID, dishID, domain.AuditActionDelete, map[string]any{
			"title":         map[string]any{"old": dish.Title},
			"removed_items": res.RemovedItems,
			"removed_votes": res.RemovedVotes,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dish deleted",
		slog.String("tenant_id", tenantID.String()),
		slog.String("dish_id", dishID.String()),
		slog.Int("removed_items", res.RemovedItems),
		slog.Int("removed_votes", res.RemovedVotes),
	)
	return res, nil
}

// GetDish returns one dish of the tenant.
func (s *Service) GetDish(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error) {
	_, tenantID, err := scope(ctx)
	if err != nil {
		return nil, err
	}
	dish, err := s.dishes.GetByID(ctx, tenantID, dishID)
	if err != nil {
		return nil, fmt.Errorf("get dish: %w", err)
	}
	return dish, nil
}

// ListDishes returns the tenant's catalog narrowed by filter.
func (s *Service) ListDishes(ctx context.Context, f domain.DishFilter) ([]domain.Dish, error) {
	_, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}
	if f.Limit < 0 || f.Offset < 0 {
		return nil, domain.NewValidationError("limit", "must not be negative")
	}
	dishes, err := s.dishes.List(ctx, tenantID, f)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return dishes, nil
}

// DishUsage lists the active weeks that serve the dish.
func (s *Service) DishUsage(ctx context.Context, dishID uuid.UUID) (*domain.DishUsage, error) {
	_, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.dishes.GetByID(ctx, tenantID, dishID); err != nil {
		return nil, fmt.Errorf("get dish: %w", err)
	}

	weeks, count, err := s.menus.WeeksUsingDish(ctx, tenantID, dishID)
	if err != nil {
		return nil, fmt.Errorf("dish usage: %w", err)
	}
	return &domain.DishUsage{DishID: dishID, ActiveWeeks: weeks, ItemCount: count}, nil
}

func (s *Service) logAudit(ctx context.Context, p domain.Principal, tenantID, dishID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	err := s.audit.Log(ctx, domain.AuditRecord{
		ID:         uuid.New(),
		TenantID:   tenantID,
		UserID:     p.UserID,
		EntityType: domain.EntityTypeDish,
		EntityID:   &dishID,
		Action:     action,
		Changes:    changes,
		CreatedAt:  s.clock.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

func copyTitle(title string) string {
	const suffix = " (copy)"
	if r := []rune(title); len(r)+len(suffix) > maxTitleLen {
		title = strings.TrimSpace(string(r[:maxTitleLen-len(suffix)]))
	}
	return title + suffix
}

func trimmed(s string) string {
	if t := trimOrNil(&s); t != nil {
		return *t
	}
	return ""
}
