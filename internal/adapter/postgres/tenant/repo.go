// Package tenant implements tenant (school) persistence using PostgreSQL.
package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/canteen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/canteen-backend/internal/domain"
)

const table = "tenants"

var columns = []string{"id", "name", "slug", "timezone", "created_at"}

// Repo provides tenant persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new tenant repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Timezone  string    `db:"timezone"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Tenant {
	return domain.Tenant{
		ID:        r.ID,
		Name:      r.Name,
		Slug:      r.Slug,
		Timezone:  r.Timezone,
		CreatedAt: r.CreatedAt,
	}
}

// Create inserts a tenant. A taken slug yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t domain.Tenant) (*domain.Tenant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	insert := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.Name, t.Slug, t.Timezone, t.CreatedAt).
		Suffix("RETURNING id, name, slug, timezone, created_at")

	var out row
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		return nil, postgres.MapError(err, "tenant", t.Slug)
	}
	res := out.toDomain()
	return &res, nil
}

// GetByID returns a tenant by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where("id = ?", id)

	var out row
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "tenant", id)
	}
	res := out.toDomain()
	return &res, nil
}

// List returns all tenants ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Tenant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("name ASC", "id ASC")

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "tenants", "list")
	}

	out := make([]domain.Tenant, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
