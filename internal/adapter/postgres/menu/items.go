package menu

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/canteen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/canteen-backend/internal/domain"
)

// AddItem inserts an item at the end of its day: sort_order is one past the
// day's current maximum. A dish already on the day returns a ConflictError.
func (r *Repo) AddItem(ctx context.Context, it domain.MenuItem) (*domain.MenuItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	nextOrder := sq.Expr(
		"(SELECT COALESCE(MAX(sort_order), 0) + 1 FROM menu_items WHERE menu_day_id = ?)",
		it.MenuDayID,
	)
	insert := postgres.Builder().
		Insert(itemsTable).
		Columns(itemColumns...).
		Values(it.ID, it.MenuDayID, it.DishID, it.Price, string(it.Category), string(it.Status),
			nextOrder, it.CreatedAt, it.UpdatedAt).
		Suffix(itemReturning)

	var out itemRow
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		if postgres.IsUniqueViolation(err, itemDishConstraint) {
			return nil, domain.NewConflictError("dish is already on this day")
		}
		return nil, postgres.MapError(err, "menu item", it.ID)
	}
	res := out.toDomain()
	return &res, nil
}

// CreateItems inserts items with their sort_order as given.
func (r *Repo) CreateItems(ctx context.Context, items []domain.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	insert := postgres.Builder().
		Insert(itemsTable).
		Columns(itemColumns...)
	for _, it := range items {
		insert = insert.Values(it.ID, it.MenuDayID, it.DishID, it.Price, string(it.Category),
			string(it.Status), it.SortOrder, it.CreatedAt, it.UpdatedAt)
	}

	if _, err := postgres.Exec(ctx, q, insert); err != nil {
		return postgres.MapError(err, "menu items", len(items))
	}
	return nil
}

// GetItemContext returns an item with its day and week status, scoped to the
// tenant.
func (r *Repo) GetItemContext(ctx context.Context, tenantID, itemID uuid.UUID) (*domain.ItemContext, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(
			"i.id", "i.menu_day_id", "i.dish_id", "i.price", "i.category", "i.status",
			"i.sort_order", "i.created_at", "i.updated_at",
			"d.week_menu_id", "w.tenant_id", "d.date", "d.is_open", "w.status AS week_status",
		).
		From(itemsTable + " i").
		Join(daysTable + " d ON d.id = i.menu_day_id").
		Join(weeksTable + " w ON w.id = d.week_menu_id").
		Where(sq.Eq{"i.id": itemID, "w.tenant_id": tenantID})

	var out itemContextRow
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "menu item", itemID)
	}
	res := out.toDomain()
	return &res, nil
}

// UpdateItem applies a partial update to one row.
func (r *Repo) UpdateItem(ctx context.Context, itemID uuid.UUID, u domain.ItemUpdate) (*domain.MenuItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if u.IsEmpty() {
		query := postgres.Builder().
			Select(itemColumns...).
			From(itemsTable).
			Where(sq.Eq{"id": itemID})
		var out itemRow
		if err := postgres.Get(ctx, q, &out, query); err != nil {
			return nil, postgres.MapError(err, "menu item", itemID)
		}
		res := out.toDomain()
		return &res, nil
	}

	update := postgres.Builder().
		Update(itemsTable).
		Set("updated_at", u.UpdatedAt).
		Where(sq.Eq{"id": itemID}).
		Suffix(itemReturning)

	if u.Price != nil {
		update = update.Set("price", *u.Price)
	}
	if u.Category != nil {
		update = update.Set("category", string(*u.Category))
	}
	if u.Status != nil {
		update = update.Set("status", string(*u.Status))
	}
	if u.SortOrder != nil {
		update = update.Set("sort_order", *u.SortOrder)
	}

	var out itemRow
	if err := postgres.Get(ctx, q, &out, update); err != nil {
		return nil, postgres.MapError(err, "menu item", itemID)
	}
	res := out.toDomain()
	return &res, nil
}

// SetSortOrders assigns positions 1..n to the given items of a day, in order.
// Items of other days are never touched.
func (r *Repo) SetSortOrders(ctx context.Context, dayID uuid.UUID, orderedIDs []uuid.UUID, now time.Time) error {
	if len(orderedIDs) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ids := make([]string, len(orderedIDs))
	for i, id := range orderedIDs {
		ids[i] = id.String()
	}

	_, err := q.Exec(ctx, `
		UPDATE menu_items i
		SET sort_order = o.ord, updated_at = $3
		FROM unnest($1::uuid[]) WITH ORDINALITY AS o(id, ord)
		WHERE i.id = o.id AND i.menu_day_id = $2`,
		ids, dayID, now,
	)
	if err != nil {
		return postgres.MapError(err, "menu day order", dayID)
	}
	return nil
}

// DeleteItem removes one item. Its votes must be removed first.
func (r *Repo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete(itemsTable).
		Where(sq.Eq{"id": itemID}))
	if err != nil {
		return postgres.MapError(err, "menu item", itemID)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "menu item", itemID)
	}
	return nil
}

// DeleteItemsByDish removes every item serving the dish and returns how many
// were deleted. Votes must be removed first.
func (r *Repo) DeleteItemsByDish(ctx context.Context, dishID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete(itemsTable).
		Where(sq.Eq{"dish_id": dishID}))
	if err != nil {
		return 0, postgres.MapError(err, "menu items for dish", dishID)
	}
	return n, nil
}

// ListItemsByDay returns a day's items in display order.
func (r *Repo) ListItemsByDay(ctx context.Context, dayID uuid.UUID) ([]domain.MenuItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"menu_day_id": dayID}).
		OrderBy("sort_order", "created_at")

	var rows []itemRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "menu items", dayID)
	}
	return itemsToDomain(rows), nil
}

// ListItemsByWeek returns all items of a week ordered by day, then position.
func (r *Repo) ListItemsByWeek(ctx context.Context, weekID uuid.UUID) ([]domain.MenuItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(
			"i.id", "i.menu_day_id", "i.dish_id", "i.price", "i.category", "i.status",
			"i.sort_order", "i.created_at", "i.updated_at",
		).
		From(itemsTable + " i").
		Join(daysTable + " d ON d.id = i.menu_day_id").
		Where(sq.Eq{"d.week_menu_id": weekID}).
		OrderBy("d.date", "i.sort_order", "i.created_at")

	var rows []itemRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "menu items", weekID)
	}
	return itemsToDomain(rows), nil
}

func itemsToDomain(rows []itemRow) []domain.MenuItem {
	out := make([]domain.MenuItem, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
