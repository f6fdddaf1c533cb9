package tenancy

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

// Resolve returns the tenant every downstream read and write of the request
// is filtered by.
//
// Non-super-admins always get their own tenant; hint is ignored for them.
// A super-admin must name the target tenant through hint (header or query
// parameter); a missing hint is ErrMissingScope and an unknown tenant is
// ErrNotFound.
func (s *Service) Resolve(ctx context.Context, p domain.Principal, hint string) (uuid.UUID, error) {
	if !p.Role.IsSuperAdmin() {
		if p.TenantID == nil || *p.TenantID == uuid.Nil {
			return uuid.Nil, domain.ErrUnauthorized
		}
		return *p.TenantID, nil
	}

	hint = strings.TrimSpace(hint)
	if hint == "" {
		return uuid.Nil, domain.ErrMissingScope
	}
	id, err := uuid.Parse(hint)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("tenantId", "must be a valid UUID")
	}

	if _, err := s.tenants.GetByID(ctx, id); err != nil {
		return uuid.Nil, fmt.Errorf("resolve tenant: %w", err)
	}
	return id, nil
}
