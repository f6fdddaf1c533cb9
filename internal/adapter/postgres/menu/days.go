package menu

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/canteen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/canteen-backend/internal/domain"
)

const dayContextSelect = "d.id AS menu_day_id, d.week_menu_id, w.tenant_id, d.date, d.is_open, w.status AS week_status"

// CreateDays inserts days in a single statement.
func (r *Repo) CreateDays(ctx context.Context, days []domain.MenuDay) ([]domain.MenuDay, error) {
	if len(days) == 0 {
		return []domain.MenuDay{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	insert := postgres.Builder().
		Insert(daysTable).
		Columns(dayColumns...).
		Suffix(dayReturning)
	for _, d := range days {
		insert = insert.Values(d.ID, d.WeekMenuID, d.Date, d.IsOpen, d.Notes)
	}

	var rows []dayRow
	if err := postgres.Select(ctx, q, &rows, insert); err != nil {
		return nil, postgres.MapError(err, "menu days", days[0].WeekMenuID)
	}
	out := make([]domain.MenuDay, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ListDays returns a week's days ordered by date.
func (r *Repo) ListDays(ctx context.Context, weekID uuid.UUID) ([]domain.MenuDay, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(dayColumns...).
		From(daysTable).
		Where(sq.Eq{"week_menu_id": weekID}).
		OrderBy("date")

	var rows []dayRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "menu days", weekID)
	}
	out := make([]domain.MenuDay, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// GetDayContext returns a day together with its week status, scoped to the
// tenant.
func (r *Repo) GetDayContext(ctx context.Context, tenantID, dayID uuid.UUID) (*domain.DayContext, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(dayContextSelect).
		From(daysTable + " d").
		Join(weeksTable + " w ON w.id = d.week_menu_id").
		Where(sq.Eq{"d.id": dayID, "w.tenant_id": tenantID})

	var out dayContextRow
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "menu day", dayID)
	}
	res := out.toDomain()
	return &res, nil
}

// SetDayOpen updates the open flag. A nil notes leaves notes untouched; an
// empty string clears them.
func (r *Repo) SetDayOpen(ctx context.Context, dayID uuid.UUID, isOpen bool, notes *string) (*domain.MenuDay, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(daysTable).
		Set("is_open", isOpen).
		Where(sq.Eq{"id": dayID}).
		Suffix(dayReturning)

	if notes != nil {
		var v *string
		if *notes != "" {
			v = notes
		}
		update = update.Set("notes", v)
	}

	var out dayRow
	if err := postgres.Get(ctx, q, &out, update); err != nil {
		return nil, postgres.MapError(err, "menu day", dayID)
	}
	res := out.toDomain()
	return &res, nil
}

// GetPublishedDay returns the tenant's day on date that belongs to a
// PUBLISHED week.
func (r *Repo) GetPublishedDay(ctx context.Context, tenantID uuid.UUID, date time.Time) (*domain.MenuDay, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select("d.id", "d.week_menu_id", "d.date", "d.is_open", "d.notes").
		From(daysTable + " d").
		Join(weeksTable + " w ON w.id = d.week_menu_id").
		Where(sq.Eq{
			"w.tenant_id": tenantID,
			"w.status":    string(domain.WeekStatusPublished),
		}).
		Where("d.date = ?::date", date.Format(time.DateOnly))

	var out dayRow
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "menu day", date.Format(time.DateOnly))
	}
	res := out.toDomain()
	return &res, nil
}
