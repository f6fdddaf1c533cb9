package menu

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

// CreateWeek creates a DRAFT week with its five school days, all open.
func (s *Service) CreateWeek(ctx context.Context, input CreateWeekInput) (*domain.WeekMenu, error) {
	p, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var week *domain.WeekMenu
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		week, createErr = s.createWeek(txCtx, tenantID, input.Year, input.ISOWeek, nil)
		if createErr != nil {
			return createErr
		}
		return s.logAudit(txCtx, s.record(p, tenantID, domain.EntityTypeWeekMenu, week.ID, domain.AuditActionCreate,
			map[string]any{"week": week.Label()}))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "week menu created",
		slog.String("tenant_id", tenantID.String()),
		slog.String("week_menu_id", week.ID.String()),
		slog.String("week", week.Label()),
	)
	return week, nil
}

// createWeek inserts the week row and its days. openByWeekday overrides the
// default (open) per weekday.
func (s *Service) createWeek(ctx context.Context, tenantID uuid.UUID, year, isoWeek int, openByWeekday map[time.Weekday]bool) (*domain.WeekMenu, error) {
	now := s.now()
	week, err := s.menus.CreateWeek(ctx, domain.WeekMenu{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Year:      year,
		ISOWeek:   isoWeek,
		Status:    domain.WeekStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create week: %w", err)
	}

	dates := domain.SchoolDates(year, isoWeek)
	days := make([]domain.MenuDay, len(dates))
	for i, d := range dates {
		open := true
		if v, ok := openByWeekday[d.Weekday()]; ok {
			open = v
		}
		days[i] = domain.MenuDay{ID: uuid.New(), WeekMenuID: week.ID, Date: d, IsOpen: open}
	}
	created, err := s.menus.CreateDays(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("create days: %w", err)
	}
	week.Days = created
	return week, nil
}

// CopyWeek creates a DRAFT week for the target ISO week that replicates the
// source's open flags (matched by weekday) and items. Item status resets to
// ACTIVE and votes are never copied. The source may be in any status.
func (s *Service) CopyWeek(ctx context.Context, input CopyWeekInput) (*domain.WeekMenu, error) {
	p, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var week *domain.WeekMenu
	var copied int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		src, getErr := s.menus.GetWeek(txCtx, tenantID, input.SourceID)
		if getErr != nil {
			return fmt.Errorf("get source week: %w", getErr)
		}
		srcDays, daysErr := s.menus.ListDays(txCtx, src.ID)
		if daysErr != nil {
			return fmt.Errorf("list source days: %w", daysErr)
		}
		srcItems, itemsErr := s.menus.ListItemsByWeek(txCtx, src.ID)
		if itemsErr != nil {
			return fmt.Errorf("list source items: %w", itemsErr)
		}

		openByWeekday := make(map[time.Weekday]bool, len(srcDays))
		weekdayOfDay := make(map[uuid.UUID]time.Weekday, len(srcDays))
		for _, d := range srcDays {
			openByWeekday[d.Date.Weekday()] = d.IsOpen
			weekdayOfDay[d.ID] = d.Date.Weekday()
		}

		var createErr error
		week, createErr = s.createWeek(txCtx, tenantID, input.TargetYear, input.TargetISOWeek, openByWeekday)
		if createErr != nil {
			return createErr
		}

		targetDay := make(map[time.Weekday]uuid.UUID, len(week.Days))
		for _, d := range week.Days {
			targetDay[d.Date.Weekday()] = d.ID
		}

		now := s.now()
		items := make([]domain.MenuItem, 0, len(srcItems))
		for _, it := range srcItems {
			dayID, ok := targetDay[weekdayOfDay[it.MenuDayID]]
			if !ok {
				continue
			}
			items = append(items, domain.MenuItem{
				ID:        uuid.New(),
				MenuDayID: dayID,
				DishID:    it.DishID,
				Price:     it.Price,
				Category:  it.Category,
				Status:    domain.ItemStatusActive,
				SortOrder: it.SortOrder,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		if err := s.menus.CreateItems(txCtx, items); err != nil {
			return fmt.Errorf("copy items: %w", err)
		}
		copied = len(items)

		return s.logAudit(txCtx, s.record(p, tenantID, domain.EntityTypeWeekMenu, week.ID, domain.AuditActionCopy,
			map[string]any{
				"source_week_menu_id": src.ID.String(),
				"source_week":         src.Label(),
				"items":               copied,
			}))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "week menu copied",
		slog.String("tenant_id", tenantID.String()),
		slog.String("source_week_menu_id", input.SourceID.String()),
		slog.String("week_menu_id", week.ID.String()),
		slog.Int("items", copied),
	)
	return week, nil
}

// Publish moves a DRAFT week to PUBLISHED and stamps publishedAt. Open days
// without items are reported as warnings; they never block publication.
func (s *Service) Publish(ctx context.Context, weekID uuid.UUID) (*domain.PublishResult, error) {
	p, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}

	res := &domain.PublishResult{}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now()
		week, updErr := s.menus.UpdateWeekStatus(txCtx, tenantID, weekID,
			domain.WeekStatusDraft, domain.WeekStatusPublished, &now, now)
		if updErr != nil {
			return fmt.Errorf("publish week: %w", updErr)
		}
		res.Week = week

		days, daysErr := s.menus.ListDays(txCtx, weekID)
		if daysErr != nil {
			return fmt.Errorf("list days: %w", daysErr)
		}
		items, itemsErr := s.menus.ListItemsByWeek(txCtx, weekID)
		if itemsErr != nil {
			return fmt.Errorf("list items: %w", itemsErr)
		}
		res.EmptyOpenDays = emptyOpenDays(days, items)

		return s.logAudit(txCtx, s.record(p, tenantID, domain.EntityTypeWeekMenu, weekID, domain.AuditActionPublish,
			statusChange(domain.WeekStatusDraft, domain.WeekStatusPublished)))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "week menu published",
		slog.String("tenant_id", tenantID.String()),
		slog.String("week_menu_id", weekID.String()),
		slog.Int("empty_open_days", len(res.EmptyOpenDays)),
	)
	return res, nil
}

// Archive moves a PUBLISHED week to ARCHIVED.
func (s *Service) Archive(ctx context.Context, weekID uuid.UUID) (*domain.WeekMenu, error) {
	return s.transition(ctx, weekID, domain.WeekStatusPublished, domain.WeekStatusArchived, domain.AuditActionArchive)
}

// Restore moves an ARCHIVED week back to PUBLISHED, keeping publishedAt.
func (s *Service) Restore(ctx context.Context, weekID uuid.UUID) (*domain.WeekMenu, error) {
	return s.transition(ctx, weekID, domain.WeekStatusArchived, domain.WeekStatusPublished, domain.AuditActionRestore)
}

func (s *Service) transition(ctx context.Context, weekID uuid.UUID, from, to domain.WeekStatus, action domain.AuditAction) (*domain.WeekMenu, error) {
	p, tenantID, err := adminScope(ctx)
	if err != nil {
		return nil, err
	}

	var week *domain.WeekMenu
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updErr error
		week, updErr = s.menus.UpdateWeekStatus(txCtx, tenantID, weekID, from, to, nil, s.now())
		if updErr != nil {
			return fmt.Errorf("%s week: %w", action, updErr)
		}
		return s.logAudit(txCtx, s.record(p, tenantID, domain.EntityTypeWeekMenu, weekID, action, statusChange(from, to)))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "week menu status changed",
		slog.String("tenant_id", tenantID.String()),
		slog.String("week_menu_id", weekID.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
	return week, nil
}

// ArchiveStale archives, across all tenants, every PUBLISHED week whose ISO
// week ended more than retentionWeeks weeks ago. It runs without a request
// principal; audit records name the nil user as the actor.
func (s *Service) ArchiveStale(ctx context.Context, retentionWeeks int) ([]domain.WeekMenu, error) {
	if retentionWeeks < 1 {
		return nil, domain.NewValidationError("archive_after_weeks", "must be at least 1")
	}
	now := s.now()
	cutoff := now.AddDate(0, 0, -7*retentionWeeks)

	var archived []domain.WeekMenu
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var archErr error
		archived, archErr = s.menus.ArchiveStale(txCtx, cutoff, now)
		if archErr != nil {
			return fmt.Errorf("archive stale weeks: %w", archErr)
		}
		system := domain.Principal{UserID: uuid.Nil}
		for _, w := range archived {
			rec := s.record(system, w.TenantID, domain.EntityTypeWeekMenu, w.ID, domain.AuditActionArchive,
				statusChange(domain.WeekStatusPublished, domain.WeekStatusArchived))
			rec.Changes["reason"] = "retention"
			if err := s.logAudit(txCtx, rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "stale week menus archived",
		slog.Int("count", len(archived)),
		slog.Time("cutoff", cutoff),
	)
	return archived, nil
}

func statusChange(from, to domain.WeekStatus) map[string]any {
	return map[string]any{
		"status": map[string]any{"old": from.String(), "new": to.String()},
	}
}

func emptyOpenDays(days []domain.MenuDay, items []domain.MenuItem) []time.Time {
	count := make(map[uuid.UUID]int, len(days))
	for _, it := range items {
		count[it.MenuDayID]++
	}
	out := []time.Time{}
	for _, d := range days {
		if d.IsOpen && count[d.ID] == 0 {
			out = append(out, d.Date)
		}
	}
	return out
}
