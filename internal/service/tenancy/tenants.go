package tenancy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/pkg/ctxutil"
)

// DefaultTimezone is used when a tenant is created without one.
const DefaultTimezone = "UTC"

// CreateTenant registers a new school. Super-admin only.
func (s *Service) CreateTenant(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !p.Role.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(input.Timezone)
	if tz == "" {
		tz = s.defaultTZ
	}
	tenant := domain.Tenant{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Slug:      strings.TrimSpace(input.Slug),
		Timezone:  tz,
		CreatedAt: s.clock.Now().UTC(),
	}

	var created *domain.Tenant
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.tenants.Create(txCtx, tenant)
		if createErr != nil {
			if errors.Is(createErr, domain.ErrAlreadyExists) {
				return domain.NewConflictError("tenant slug %q is already taken", tenant.Slug)
			}
			return fmt.Errorf("create tenant: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			TenantID:   created.ID,
			UserID:     p.UserID,
			EntityType: domain.EntityTypeTenant,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"slug":     map[string]any{"new": created.Slug},
				"timezone": map[string]any{"new": created.Timezone},
			},
			CreatedAt: tenant.CreatedAt,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tenant created",
		slog.String("tenant_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)
	return created, nil
}

// ListTenants returns all tenants. Super-admin only.
func (s *Service) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !p.Role.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}

	tenants, err := s.tenants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return tenants, nil
}

// GetTenant returns a tenant by id.
func (s *Service) GetTenant(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	t, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return t, nil
}
