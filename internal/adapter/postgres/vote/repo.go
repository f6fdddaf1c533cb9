// Package vote implements the vote ledger repository using PostgreSQL.
// Stats are never stored; they are always derived from vote rows.
package vote

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/canteen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/canteen-backend/internal/domain"
)

const table = "votes"

var columns = []string{"id", "menu_item_id", "user_id", "value", "created_at", "updated_at"}

const returning = "RETURNING id, menu_item_id, user_id, value, created_at, updated_at"

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new vote repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID         uuid.UUID `db:"id"`
	MenuItemID uuid.UUID `db:"menu_item_id"`
	UserID     uuid.UUID `db:"user_id"`
	Value      int       `db:"value"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Vote {
	return domain.Vote{
		ID:         r.ID,
		MenuItemID: r.MenuItemID,
		UserID:     r.UserID,
		Value:      r.Value,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type statsRow struct {
	MenuItemID uuid.UUID `db:"menu_item_id"`
	Up         int       `db:"up"`
	Mid        int       `db:"mid"`
	Down       int       `db:"down"`
	Total      int       `db:"total"`
}

func (r statsRow) toDomain() domain.VoteStats {
	return domain.VoteStats{
		MenuItemID: r.MenuItemID,
		Up:         r.Up,
		Mid:        r.Mid,
		Down:       r.Down,
		Total:      r.Total,
	}
}

func key(itemID, userID uuid.UUID) string {
	return fmt.Sprintf("%s/%s", itemID, userID)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert records the user's vote for the item, overwriting an earlier one.
// Concurrent casts by the same user collapse onto one row.
func (r *Repo) Upsert(ctx context.Context, v domain.Vote) (*domain.Vote, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	insert := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(v.ID, v.MenuItemID, v.UserID, v.Value, v.CreatedAt, v.UpdatedAt).
		Suffix("ON CONFLICT (menu_item_id, user_id) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		return nil, postgres.MapError(err, "vote", key(v.MenuItemID, v.UserID))
	}
	res := out.toDomain()
	return &res, nil
}

// Update changes an existing vote. No prior vote is ErrNotFound.
func (r *Repo) Update(ctx context.Context, itemID, userID uuid.UUID, value int, now time.Time) (*domain.Vote, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("value", value).
		Set("updated_at", now).
		Where(sq.Eq{"menu_item_id": itemID, "user_id": userID}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, q, &out, update); err != nil {
		return nil, postgres.MapError(err, "vote", key(itemID, userID))
	}
	res := out.toDomain()
	return &res, nil
}

// DeleteByItem removes all votes for an item and returns how many were removed.
func (r *Repo) DeleteByItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete(table).
		Where(sq.Eq{"menu_item_id": itemID}))
	if err != nil {
		return 0, postgres.MapError(err, "votes for item", itemID)
	}
	return int(n), nil
}

// DeleteByDish removes every vote on any item serving the dish.
func (r *Repo) DeleteByDish(ctx context.Context, dishID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete(table).
		Where(sq.Expr("menu_item_id IN (SELECT id FROM menu_items WHERE dish_id = ?)", dishID)))
	if err != nil {
		return 0, postgres.MapError(err, "votes for dish", dishID)
	}
	return int(n), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the user's vote on the item.
func (r *Repo) Get(ctx context.Context, itemID, userID uuid.UUID) (*domain.Vote, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"menu_item_id": itemID, "user_id": userID})

	var out row
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "vote", key(itemID, userID))
	}
	res := out.toDomain()
	return &res, nil
}

func statsSelect() sq.SelectBuilder {
	return postgres.Builder().
		Select(
			"menu_item_id",
			"count(*) FILTER (WHERE value = 1) AS up",
			"count(*) FILTER (WHERE value = 0) AS mid",
			"count(*) FILTER (WHERE value = -1) AS down",
			"count(*) AS total",
		).
		From(table).
		GroupBy("menu_item_id")
}

// Stats derives the tally for one item. An item with no votes has zero stats.
func (r *Repo) Stats(ctx context.Context, itemID uuid.UUID) (domain.VoteStats, error) {
	all, err := r.StatsByItems(ctx, []uuid.UUID{itemID})
	if err != nil {
		return domain.VoteStats{}, err
	}
	return all[itemID], nil
}

// StatsByItems derives tallies for many items in one query. Every requested
// item is present in the result, with zero stats when it has no votes.
func (r *Repo) StatsByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]domain.VoteStats, error) {
	out := make(map[uuid.UUID]domain.VoteStats, len(itemIDs))
	for _, id := range itemIDs {
		out[id] = domain.VoteStats{MenuItemID: id}
	}
	if len(itemIDs) == 0 {
		return out, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []statsRow
	if err := postgres.Select(ctx, q, &rows, statsSelect().Where(sq.Eq{"menu_item_id": itemIDs})); err != nil {
		return nil, postgres.MapError(err, "vote stats", len(itemIDs))
	}
	for _, row := range rows {
		out[row.MenuItemID] = row.toDomain()
	}
	return out, nil
}

// UserVotesByItems returns the user's vote value per item, for items the user
// has voted on.
func (r *Repo) UserVotesByItems(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int)
	if len(itemIDs) == 0 {
		return out, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "menu_item_id": itemIDs})

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "user votes", userID)
	}
	for _, row := range rows {
		out[row.MenuItemID] = row.Value
	}
	return out, nil
}
