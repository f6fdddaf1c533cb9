package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/pkg/clock"
)

// CastVote records or overwrites the caller's vote on an item and returns
// the item's fresh stats.
func (s *Service) CastVote(ctx context.Context, itemID uuid.UUID, value int) (*domain.CastResult, error) {
	p, tenantID, err := scope(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.admit(ctx, p, tenantID, itemID, value); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	v, err := s.votes.Upsert(ctx, domain.Vote{
		ID:         uuid.New(),
		MenuItemID: itemID,
		UserID:     p.UserID,
		Value:      value,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("cast vote: %w", err)
	}

	return s.result(ctx, tenantID, v)
}

// UpdateVote changes an existing vote. It runs the same checks as CastVote
// and fails with ErrNotFound when the caller has not voted yet.
func (s *Service) UpdateVote(ctx context.Context, itemID uuid.UUID, value int) (*domain.CastResult, error) {
	p, tenantID, err := scope(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, tenantID, itemID, value); err != nil {
		return nil, err
	}
	if _, err := s.votes.Get(ctx, itemID, p.UserID); err != nil {
		return nil, fmt.Errorf("update vote: %w", err)
	}
	if err := s.throttle(ctx, p); err != nil {
		return nil, err
	}

	v, err := s.votes.Update(ctx, itemID, p.UserID, value, s.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update vote: %w", err)
	}

	return s.result(ctx, tenantID, v)
}

// GetStats returns the vote distribution of an item visible to the caller.
func (s *Service) GetStats(ctx context.Context, itemID uuid.UUID) (domain.VoteStats, error) {
	p, tenantID, err := scope(ctx)
	if err != nil {
		return domain.VoteStats{}, err
	}
	if _, err := s.visibleItem(ctx, p, tenantID, itemID); err != nil {
		return domain.VoteStats{}, err
	}

	stats, err := s.votes.Stats(ctx, itemID)
	if err != nil {
		return domain.VoteStats{}, fmt.Errorf("vote stats: %w", err)
	}
	return stats, nil
}

// GetUserVote returns the caller's vote value on an item, or nil.
func (s *Service) GetUserVote(ctx context.Context, itemID uuid.UUID) (*int, error) {
	p, tenantID, err := scope(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.visibleItem(ctx, p, tenantID, itemID); err != nil {
		return nil, err
	}

	v, err := s.votes.Get(ctx, itemID, p.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vote: %w", err)
	}
	return &v.Value, nil
}

// admit runs the vote pipeline up to the write: value, item visibility,
// open day, voting window and rate limit, in that order.
func (s *Service) admit(ctx context.Context, p domain.Principal, tenantID, itemID uuid.UUID, value int) error {
	if err := s.check(ctx, tenantID, itemID, value); err != nil {
		return err
	}
	return s.throttle(ctx, p)
}

// check runs every admission rule except the rate limit.
func (s *Service) check(ctx context.Context, tenantID, itemID uuid.UUID, value int) error {
	if !domain.IsValidVoteValue(value) {
		return domain.NewValidationError("value", "must be one of -1, 0, 1")
	}

	ic, err := s.items.GetItemContext(ctx, tenantID, itemID)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}
	if ic.Day.WeekStatus != domain.WeekStatusPublished {
		return fmt.Errorf("menu item %s: %w", itemID, domain.ErrNotFound)
	}
	if !ic.Day.IsOpen {
		return domain.ErrVotingClosed
	}

	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("get tenant: %w", err)
	}
	today := clock.Today(s.clock.Now(), tenant.Location())
	if !domain.SameDate(ic.Day.Date, today) {
		return domain.ErrVotingWindow
	}
	return nil
}

// throttle consumes one rate-limit slot for the caller.
func (s *Service) throttle(ctx context.Context, p domain.Principal) error {
	if d := s.limiter.Check(p.UserID.String()); !d.Allowed {
		s.log.WarnContext(ctx, "vote rate limited",
			slog.String("user_id", p.UserID.String()),
			slog.Duration("retry_after", d.RetryAfter),
		)
		return &domain.RateLimitedError{RetryAfter: d.RetryAfter}
	}
	return nil
}

// visibleItem hides items of unpublished weeks from non-admins.
func (s *Service) visibleItem(ctx context.Context, p domain.Principal, tenantID, itemID uuid.UUID) (*domain.ItemContext, error) {
	ic, err := s.items.GetItemContext(ctx, tenantID, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if !p.IsAdmin() && ic.Day.WeekStatus != domain.WeekStatusPublished {
		return nil, fmt.Errorf("menu item %s: %w", itemID, domain.ErrNotFound)
	}
	return ic, nil
}

func (s *Service) result(ctx context.Context, tenantID uuid.UUID, v *domain.Vote) (*domain.CastResult, error) {
	stats, err := s.votes.Stats(ctx, v.MenuItemID)
	if err != nil {
		return nil, fmt.Errorf("vote stats: %w", err)
	}

	s.log.InfoContext(ctx, "vote recorded",
		slog.String("tenant_id", tenantID.String()),
		slog.String("menu_item_id", v.MenuItemID.String()),
		slog.String("user_id", v.UserID.String()),
		slog.Int("value", v.Value),
	)
	return &domain.CastResult{Vote: v, Stats: stats}, nil
}
