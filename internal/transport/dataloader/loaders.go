package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/pkg/ctxutil"
)

func newStatsBatchFn(repo voteRepo) dataloader.BatchFunc[uuid.UUID, domain.VoteStats] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.VoteStats] {
		stats, err := repo.StatsByItems(ctx, keys)
		if err != nil {
			return errorResults[domain.VoteStats](len(keys), err)
		}

		results := make([]*dataloader.Result[domain.VoteStats], len(keys))
		for i, key := range keys {
			s, ok := stats[key]
			if !ok {
				s = domain.VoteStats{MenuItemID: key}
			}
			results[i] = &dataloader.Result[domain.VoteStats]{Data: s}
		}
		return results
	}
}

// The caller's own vote; nil when they have not voted or are anonymous.
func newUserVoteBatchFn(repo voteRepo) dataloader.BatchFunc[uuid.UUID, *int] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*int] {
		results := make([]*dataloader.Result[*int], len(keys))

		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			for i := range results {
				results[i] = &dataloader.Result[*int]{}
			}
			return results
		}

		votes, err := repo.UserVotesByItems(ctx, userID, keys)
		if err != nil {
			return errorResults[*int](len(keys), err)
		}
		for i, key := range keys {
			var v *int
			if value, ok := votes[key]; ok {
				v = &value
			}
			results[i] = &dataloader.Result[*int]{Data: v}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
