// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/canteen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/canteen-backend/internal/domain"
)

const table = "audit_log"

var columns = []string{
	"id", "tenant_id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at",
}

// DefaultLimit caps history reads.
const DefaultLimit = 100

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new audit repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID         uuid.UUID  `db:"id"`
	TenantID   uuid.UUID  `db:"tenant_id"`
	UserID     uuid.UUID  `db:"user_id"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Action     string     `db:"action"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	insert := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(record.ID, record.TenantID, record.UserID, string(record.EntityType),
			record.EntityID, string(record.Action), string(changesJSON), record.CreatedAt).
		Suffix("RETURNING id, tenant_id, user_id, entity_type, entity_id, action, changes, created_at")

	var out row
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}
	return toDomain(out)
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger interfaces of the menu and catalog services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntity returns the change history for one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, tenantID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"tenant_id": tenantID, "entity_type": string(entityType), "entity_id": entityID})

	return r.list(ctx, query, limit, entityID)
}

// ListForWeek returns the history of a week menu: records about the week
// itself plus day/item records tagged with its id in changes.week_menu_id.
func (r *Repo) ListForWeek(ctx context.Context, tenantID, weekID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"tenant_id": tenantID}).
		Where(sq.Or{
			sq.Eq{"entity_id": weekID},
			sq.Expr("changes->>'week_menu_id' = ?", weekID.String()),
		})

	return r.list(ctx, query, limit, weekID)
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder, limit int, id uuid.UUID) ([]domain.AuditRecord, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query = query.OrderBy("created_at DESC", "id").Limit(uint64(limit))

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("get audit_records for %s: %w", id, err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, rw := range rows {
		rec, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(rw row) (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:         rw.ID,
		TenantID:   rw.TenantID,
		UserID:     rw.UserID,
		EntityType: domain.EntityType(rw.EntityType),
		EntityID:   rw.EntityID,
		Action:     domain.AuditAction(rw.Action),
		CreatedAt:  rw.CreatedAt,
	}

	// changes: JSONB -> map[string]any
	changes := make(map[string]any)
	if len(rw.Changes) > 0 {
		if err := json.Unmarshal(rw.Changes, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rw.ID, err)
		}
	}
	record.Changes = changes

	return record, nil
}
