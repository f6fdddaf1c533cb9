package vote

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/internal/ratelimit"
	"github.com/heartmarshall/canteen-backend/pkg/clock"
	"github.com/heartmarshall/canteen-backend/pkg/ctxutil"
)

type itemRepo interface {
	GetItemContext(ctx context.Context, tenantID, itemID uuid.UUID) (*domain.ItemContext, error)
}

type tenantRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
}

type voteRepo interface {
	Upsert(ctx context.Context, v domain.Vote) (*domain.Vote, error)
	Update(ctx context.Context, itemID, userID uuid.UUID, value int, now time.Time) (*domain.Vote, error)
	Get(ctx context.Context, itemID, userID uuid.UUID) (*domain.Vote, error)
	Stats(ctx context.Context, itemID uuid.UUID) (domain.VoteStats, error)
}

type limiter interface {
	Check(key string) ratelimit.Decision
}

// Service records student sentiment on today's menu items.
type Service struct {
	items   itemRepo
	tenants tenantRepo
	votes   voteRepo
	limiter limiter
	clock   clock.Clock
	log     *slog.Logger
}

// NewService creates a new vote service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	tenants tenantRepo,
	votes voteRepo,
	lim limiter,
	clk clock.Clock,
) *Service {
	return &Service{
		items:   items,
		tenants: tenants,
		votes:   votes,
		limiter: lim,
		clock:   clk,
		log:     log.With("service", "vote"),
	}
}

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
