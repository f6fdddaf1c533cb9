// Package menu implements week menu, day and item persistence using
// PostgreSQL. Days and items carry no tenant column; tenancy is enforced by
// joining through week_menus.
package menu

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/canteen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/canteen-backend/internal/domain"
)

const (
	weeksTable = "week_menus"
	daysTable  = "menu_days"
	itemsTable = "menu_items"

	weekKeyConstraint  = "week_menus_tenant_year_week_key"
	itemDishConstraint = "menu_items_day_dish_key"
)

// Repo provides menu persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new menu repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Weeks
// ---------------------------------------------------------------------------

// CreateWeek inserts a week menu. A duplicate (tenant, year, week) returns a
// ConflictError.
func (r *Repo) CreateWeek(ctx context.Context, w domain.WeekMenu) (*domain.WeekMenu, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	insert := postgres.Builder().
		Insert(weeksTable).
		Columns(weekColumns...).
		Values(w.ID, w.TenantID, w.Year, w.ISOWeek, string(w.Status), w.PublishedAt, w.CreatedAt, w.UpdatedAt).
		Suffix(weekReturning)

	var out weekRow
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		if postgres.IsUniqueViolation(err, weekKeyConstraint) {
			return nil, domain.NewConflictError("Week menu for %d W%d already exists", w.Year, w.ISOWeek)
		}
		return nil, postgres.MapError(err, "week menu", w.ID)
	}
	res := out.toDomain()
	return &res, nil
}

// GetWeek returns a week menu (without days) inside the tenant.
func (r *Repo) GetWeek(ctx context.Context, tenantID, id uuid.UUID) (*domain.WeekMenu, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(weekColumns...).
		From(weeksTable).
		Where(sq.Eq{"id": id, "tenant_id": tenantID})

	var out weekRow
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "week menu", id)
	}
	res := out.toDomain()
	return &res, nil
}

// ListWeeks returns the tenant's weeks, newest first.
func (r *Repo) ListWeeks(ctx context.Context, tenantID uuid.UUID, f domain.WeekFilter) ([]domain.WeekMenu, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(weekColumns...).
		From(weeksTable).
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("year DESC", "iso_week DESC")

	if f.Year != nil {
		query = query.Where(sq.Eq{"year": *f.Year})
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		query = query.Where(sq.Eq{"status": statuses})
	}

	var rows []weekRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "week menus", tenantID)
	}
	out := make([]domain.WeekMenu, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// UpdateWeekStatus moves a week from one status to another. The update is
// conditional on the current status, so concurrent transitions cannot both
// win. When no row matches, the week is re-read to tell a missing week from
// an illegal transition.
func (r *Repo) UpdateWeekStatus(
	ctx context.Context,
	tenantID, id uuid.UUID,
	from, to domain.WeekStatus,
	publishedAt *time.Time,
	now time.Time,
) (*domain.WeekMenu, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(weeksTable).
		Set("status", string(to)).
		Set("updated_at", now).
		Where(sq.Eq{"id": id, "tenant_id": tenantID, "status": string(from)}).
		Suffix(weekReturning)

	if publishedAt != nil {
		update = update.Set("published_at", *publishedAt)
	}

	var out weekRow
	err := postgres.Get(ctx, q, &out, update)
	if err == nil {
		res := out.toDomain()
		return &res, nil
	}

	mapped := postgres.MapError(err, "week menu", id)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, mapped
	}

	current, getErr := r.GetWeek(ctx, tenantID, id)
	if getErr != nil {
		return nil, getErr
	}
	if err := domain.CheckTransition(current.Status, to); err != nil {
		return nil, err
	}
	// Status changed between the update and the re-read.
	return nil, domain.NewConflictError("week menu %s changed concurrently", id)
}

// ArchiveStale archives every PUBLISHED week (across tenants) that ended
// before cutoff and returns the archived weeks.
func (r *Repo) ArchiveStale(ctx context.Context, cutoff, now time.Time) ([]domain.WeekMenu, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	// A week ends on its Sunday: the last stored day (Friday) plus two.
	update := postgres.Builder().
		Update(weeksTable+" w").
		Set("status", string(domain.WeekStatusArchived)).
		Set("updated_at", now).
		Where(sq.Eq{"w.status": string(domain.WeekStatusPublished)}).
		Where(sq.Expr(
			"(SELECT max(d.date) + 2 FROM menu_days d WHERE d.week_menu_id = w.id) < ?::date",
			cutoff.Format(time.DateOnly),
		)).
		Suffix("RETURNING w.id, w.tenant_id, w.year, w.iso_week, w.status, w.published_at, w.created_at, w.updated_at")

	var rows []weekRow
	if err := postgres.Select(ctx, q, &rows, update); err != nil {
		return nil, postgres.MapError(err, "week menus", "stale")
	}
	out := make([]domain.WeekMenu, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// WeeksUsingDish lists the active (DRAFT or PUBLISHED) weeks whose items
// reference the dish, with the item count per week.
func (r *Repo) WeeksUsingDish(ctx context.Context, tenantID, dishID uuid.UUID) ([]domain.WeekRef, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select("w.id AS week_menu_id", "w.year", "w.iso_week", "w.status", "count(i.id) AS items").
		From(itemsTable + " i").
		Join(daysTable + " d ON d.id = i.menu_day_id").
		Join(weeksTable + " w ON w.id = d.week_menu_id").
		Where(sq.Eq{
			"i.dish_id":   dishID,
			"w.tenant_id": tenantID,
			"w.status":    []string{string(domain.WeekStatusDraft), string(domain.WeekStatusPublished)},
		}).
		GroupBy("w.id", "w.year", "w.iso_week", "w.status").
		OrderBy("w.year", "w.iso_week")

	var rows []weekRefRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, 0, postgres.MapError(err, "dish usage", dishID)
	}
	refs := make([]domain.WeekRef, len(rows))
	total := 0
	for i, row := range rows {
		refs[i] = row.toDomain()
		total += row.Items
	}
	return refs, total, nil
}
