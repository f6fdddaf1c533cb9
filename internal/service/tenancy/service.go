package tenancy

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/pkg/clock"
)

type tenantRepo interface {
	Create(ctx context.Context, t domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	List(ctx context.Context) ([]domain.Tenant, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service resolves the tenant scope of a request and manages tenants.
type Service struct {
	tenants tenantRepo
	audit   auditLogger
	tx      txManager
	clock   clock.Clock
	log     *slog.Logger

	defaultTZ string
}

// NewService creates a new tenancy service.
func NewService(
	log *slog.Logger,
	tenants tenantRepo,
	audit auditLogger,
	tx txManager,
	clk clock.Clock,
) *Service {
	return &Service{
		tenants: tenants,
		audit:   audit,
		tx:      tx,
		clock:   clk,
		log:     log.With("service", "tenancy"),

		defaultTZ: DefaultTimezone,
	}
}

// SetDefaultTimezone overrides the zone given to tenants created without one.
func (s *Service) SetDefaultTimezone(tz string) {
	if tz != "" {
		s.defaultTZ = tz
	}
}
