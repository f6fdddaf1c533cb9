// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/canteen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/canteen-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "tenant_id", "email", "name", "role", "created_at", "updated_at"}

const returning = "RETURNING id, tenant_id, email, name, role, created_at, updated_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new user repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	TenantID  *uuid.UUID `db:"tenant_id"`
	Email     string     `db:"email"`
	Name      string     `db:"name"`
	Role      string     `db:"role"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:        r.ID,
		TenantID:  r.TenantID,
		Email:     r.Email,
		Name:      r.Name,
		Role:      domain.UserRole(r.Role),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.getOne(ctx, sq.Eq{"lower(email)": email}, email)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, id any) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out row
	if err := postgres.Get(ctx, q, &out, postgres.Builder().Select(columns...).From(table).Where(where)); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	u := out.toDomain()
	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	insert := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.TenantID, u.Email, u.Name, string(u.Role), u.CreatedAt, u.UpdatedAt).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	res := out.toDomain()
	return &res, nil
}

// UpdateRole sets the user's role. Demoting a tenant-less super-admin fails
// the users_tenant_check constraint and surfaces as ErrValidation.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole, now time.Time) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("role", string(role)).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, q, &out, update); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	res := out.toDomain()
	return &res, nil
}
