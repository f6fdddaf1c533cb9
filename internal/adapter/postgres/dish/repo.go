// Package dish implements the dish catalog repository using PostgreSQL.
// Every read and write is filtered by tenant.
package dish

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/canteen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/canteen-backend/internal/domain"
)

const table = "dishes"

var columns = []string{
	"id", "tenant_id", "title", "description", "image_ref",
	"allergens", "tags", "created_at", "updated_at",
}

const returning = "RETURNING id, tenant_id, title, description, image_ref, allergens, tags, created_at, updated_at"

// DefaultLimit caps List when the filter has no limit.
const DefaultLimit = 200

// Repo provides dish persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new dish repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	TenantID    uuid.UUID `db:"tenant_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	ImageRef    *string   `db:"image_ref"`
	Allergens   []string  `db:"allergens"`
	Tags        []string  `db:"tags"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Dish {
	return domain.Dish{
		ID:          r.ID,
		TenantID:    r.TenantID,
		Title:       r.Title,
		Description: r.Description,
		ImageRef:    r.ImageRef,
		Allergens:   r.Allergens,
		Tags:        r.Tags,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toDomainList(rows []row) []domain.Dish {
	out := make([]domain.Dish, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a dish.
func (r *Repo) Create(ctx context.Context, d domain.Dish) (*domain.Dish, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	insert := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(d.ID, d.TenantID, d.Title, d.Description, d.ImageRef, d.Allergens, d.Tags, d.CreatedAt, d.UpdatedAt).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		return nil, postgres.MapError(err, "dish", d.ID)
	}
	res := out.toDomain()
	return &res, nil
}

// Update applies a partial update inside the tenant.
func (r *Repo) Update(ctx context.Context, tenantID, id uuid.UUID, p domain.DishUpdate) (*domain.Dish, error) {
	if p.IsEmpty() {
		return r.GetByID(ctx, tenantID, id)
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		Suffix(returning)

	if p.Title != nil {
		update = update.Set("title", *p.Title)
	}
	if p.Description != nil {
		update = update.Set("description", nullIfEmpty(*p.Description))
	}
	if p.ImageRef != nil {
		update = update.Set("image_ref", nullIfEmpty(*p.ImageRef))
	}
	if p.Allergens != nil {
		update = update.Set("allergens", p.Allergens)
	}
	if p.Tags != nil {
		update = update.Set("tags", p.Tags)
	}

	var out row
	if err := postgres.Get(ctx, q, &out, update); err != nil {
		return nil, postgres.MapError(err, "dish", id)
	}
	res := out.toDomain()
	return &res, nil
}

// Delete removes a dish. Menu items and votes referencing it must be removed
// first in the same transaction.
func (r *Repo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "tenant_id": tenantID}))
	if err != nil {
		return postgres.MapError(err, "dish", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "dish", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a dish inside the tenant.
func (r *Repo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Dish, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "tenant_id": tenantID})

	var out row
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "dish", id)
	}
	res := out.toDomain()
	return &res, nil
}

// GetByIDs returns the tenant's dishes among ids, in no particular order.
// Unknown and foreign IDs are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]domain.Dish, error) {
	if len(ids) == 0 {
		return []domain.Dish{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"tenant_id": tenantID, "id": ids})

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "dishes", "by ids")
	}
	return toDomainList(rows), nil
}

// Exists reports whether the dish exists inside the tenant.
func (r *Repo) Exists(ctx context.Context, tenantID, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM dishes WHERE id = $1 AND tenant_id = $2)`,
		id, tenantID,
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "dish", id)
	}
	return exists, nil
}

// List returns the tenant's dishes ordered by title, narrowed by filter.
// Search is a case-insensitive substring match on title; Tag is an exact
// (normalized) tag membership test.
func (r *Repo) List(ctx context.Context, tenantID uuid.UUID, f domain.DishFilter) ([]domain.Dish, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	limit := f.Limit
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("lower(title) ASC", "id ASC").
		Limit(uint64(limit))

	if f.Offset > 0 {
		query = query.Offset(uint64(f.Offset))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		query = query.Where(sq.ILike{"title": "%" + escapeLike(s) + "%"})
	}
	if f.Tag != "" {
		query = query.Where("? = ANY(tags)", domain.NormalizeLabel(f.Tag))
	}

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "dishes", tenantID)
	}
	return toDomainList(rows), nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
