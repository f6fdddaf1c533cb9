package menu

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/pkg/clock"
	"github.com/heartmarshall/canteen-backend/pkg/ctxutil"
)

type menuRepo interface {
	// Weeks
	CreateWeek(ctx context.Context, w domain.WeekMenu) (*domain.WeekMenu, error)
	GetWeek(ctx context.Context, tenantID, id uuid.UUID) (*domain.WeekMenu, error)
	ListWeeks(ctx context.Context, tenantID uuid.UUID, f domain.WeekFilter) ([]domain.WeekMenu, error)
	UpdateWeekStatus(ctx context.Context, tenantID, id uuid.UUID, from, to domain.WeekStatus, publishedAt *time.Time, now time.Time) (*domain.WeekMenu, error)
	ArchiveStale(ctx context.Context, cutoff, now time.Time) ([]domain.WeekMenu, error)

	// Days
	CreateDays(ctx context.Context, days []domain.MenuDay) ([]domain.MenuDay, error)
	ListDays(ctx context.Context, weekID uuid.UUID) ([]domain.MenuDay, error)
	GetDayContext(ctx context.Context, tenantID, dayID uuid.UUID) (*domain.DayContext, error)
	SetDayOpen(ctx context.Context, dayID uuid.UUID, isOpen bool, notes *string) (*domain.MenuDay, error)
	GetPublishedDay(ctx context.Context, tenantID uuid.UUID, date time.Time) (*domain.MenuDay, error)

	// Items
	AddItem(ctx context.Context, it domain.MenuItem) (*domain.MenuItem, error)
	CreateItems(ctx context.Context, items []domain.MenuItem) error
	GetItemContext(ctx context.Context, tenantID, itemID uuid.UUID) (*domain.ItemContext, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, u domain.ItemUpdate) (*domain.MenuItem, error)
	SetSortOrders(ctx context.Context, dayID uuid.UUID, orderedIDs []uuid.UUID, now time.Time) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	ListItemsByDay(ctx context.Context, dayID uuid.UUID) ([]domain.MenuItem, error)
	ListItemsByWeek(ctx context.Context, weekID uuid.UUID) ([]domain.MenuItem, error)
}

type dishRepo interface {
	Exists(ctx context.Context, tenantID, id uuid.UUID) (bool, error)
	GetByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]domain.Dish, error)
}

type voteRepo interface {
	DeleteByItem(ctx context.Context, itemID uuid.UUID) (int, error)
}

type tenantRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListForWeek(ctx context.Context, tenantID, weekID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages week menus through their lifecycle:
// DRAFT -> PUBLISHED -> ARCHIVED, and ARCHIVED -> PUBLISHED on restore.
type Service struct {
	menus   menuRepo
	dishes  dishRepo
	votes   voteRepo
	tenants tenantRepo
	audit   auditRepo
	tx      txManager
	clock   clock.Clock
	log     *slog.Logger
}

// NewService creates a new menu service.
func NewService(
	log *slog.Logger,
	menus menuRepo,
	dishes dishRepo,
	votes voteRepo,
	tenants tenantRepo,
	audit auditRepo,
	tx txManager,
	clk clock.Clock,
) *Service {
	return &Service{
		menus:   menus,
		dishes:  dishes,
		votes:   votes,
		tenants: tenants,
		audit:   audit,
		tx:      tx,
		clock:   clk,
		log:     log.With("service", "menu"),
	}
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

func (s *Service) logAudit(ctx context.Context, rec domain.AuditRecord) error {
	if err := s.audit.Log(ctx, rec); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC()
}

// record builds an audit record. Day and item records carry week_menu_id in
// changes so they show up in the week's history.
func (s *Service) record(
	p domain.Principal,
	tenantID uuid.UUID,
	entityType domain.EntityType,
	entityID uuid.UUID,
	action domain.AuditAction,
	changes map[string]any,
) domain.AuditRecord {
	return domain.AuditRecord{
		ID:         uuid.New(),
		TenantID:   tenantID,
		UserID:     p.UserID,
		EntityType: entityType,
		EntityID:   &entityID,
		Action:     action,
		Changes:    changes,
		CreatedAt:  s.now(),
	}
}
