package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/pkg/clock"
	"github.com/heartmarshall/canteen-backend/pkg/ctxutil"
)

type dishRepo interface {
	Create(ctx context.Context, d domain.Dish) (*domain.Dish, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, p domain.DishUpdate) (*domain.Dish, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Dish, error)
	List(ctx context.Context, tenantID uuid.UUID, f domain.DishFilter) ([]domain.Dish, error)
}

type menuRepo interface {
	WeeksUsingDish(ctx context.Context, tenantID, dishID uuid.UUID) ([]domain.WeekRef, int, error)
	DeleteItemsByDish(ctx context.Context, dishID uuid.UUID) (int64, error)
}

type voteRepo interface {
	DeleteByDish(ctx context.Context, dishID uuid.UUID) (int, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages a tenant's dish catalog.
type Service struct {
	dishes dishRepo
	menus  menuRepo
	votes  voteRepo
	audit  auditLogger
	tx     txManager
	clock  clock.Clock
	log    *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	dishes dishRepo,
	menus menuRepo,
	votes voteRepo,
	audit auditLogger,
	tx txManager,
	clk clock.Clock,
) *Service {
	return &Service{
		dishes: dishes,
		menus:  menus,
		votes:  votes,
		audit:  audit,
		tx:     tx,
		clock:  clk,
		log:    log.With("service", "catalog"),
	}
}

// DeleteDishResult reports what a dish deletion removed along with it.
type DeleteDishResult struct {
	DishID       uuid.UUID
	RemovedItems int
	RemovedVotes int
}

// scope returns the caller and resolved tenant for any request.
func scope(ctx context.Context) (domain.Principal, uuid.UUID, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.Principal{}, uuid.Nil, domain.ErrUnauthorized
	}
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return domain.Principal{}, uuid.Nil, domain.ErrMissingScope
	}
	return p, tenantID, nil
}

// adminScope is scope restricted to admin roles.
func adminScope(ctx context.Context) (domain.Principal, uuid.UUID, error) {
	p, tenantID, err := scope(ctx)
	if err != nil {
		return p, tenantID, err
	}
	if !p.IsAdmin() {
		return p, tenantID, domain.ErrForbidden
	}
	return p, tenantID, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
