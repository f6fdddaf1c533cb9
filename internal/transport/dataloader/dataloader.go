// Package dataloader provides per-request loaders that batch the vote
// lookups of a week or day view into single SQL calls. Loaders call the vote
// repository directly; callers only pass item IDs they already resolved
// through the menu service, so tenant scoping is inherited.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

const (
	maxBatch = 200
	wait     = 2 * time.Millisecond
)

type voteRepo interface {
	StatsByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]domain.VoteStats, error)
	UserVotesByItems(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	StatsByItemID    *dataloader.Loader[uuid.UUID, domain.VoteStats]
	UserVoteByItemID *dataloader.Loader[uuid.UUID, *int]
}

// NewLoaders creates a fresh set of loaders. Must be called per request
// (loaders cache results for their lifetime).
func NewLoaders(votes voteRepo) *Loaders {
	return &Loaders{
		StatsByItemID:    newLoader(newStatsBatchFn(votes)),
		UserVoteByItemID: newLoader(newUserVoteBatchFn(votes)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
