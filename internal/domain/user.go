package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a person known to the service. Users are provisioned externally;
// the API only sees them through token claims.
type User struct {
	ID        uuid.UUID
	TenantID  *uuid.UUID
	Email     string
	Name      string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   uuid.UUID
	Role     UserRole
	TenantID *uuid.UUID // nil only for super-admins
}

// IsAdmin reports whether the principal may manage menus and dishes.
func (p Principal) IsAdmin() bool { return p.Role.IsAdmin() }
