package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/pkg/clock"
)

// Tenant is a school: the unit of data isolation. Every dish, week menu and
// non-super-admin user belongs to exactly one tenant.
type Tenant struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	Timezone  string
	CreatedAt time.Time
}

// Location returns the tenant's configured time zone, falling back to UTC
// when the stored name cannot be loaded.
func (t *Tenant) Location() *time.Location {
	return clock.ParseTimezone(t.Timezone)
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
