package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote values.
const (
	VoteDown = -1
	VoteMid  = 0
	VoteUp   = 1
)

// Vote is one user's sentiment on one menu item.
type Vote struct {
	ID         uuid.UUID
	MenuItemID uuid.UUID
	UserID     uuid.UUID
	Value      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VoteStats is always derived from vote rows. Total is the row count, which
// equals Up+Mid+Down.
type VoteStats struct {
	MenuItemID uuid.UUID
	Up         int
	Mid        int
	Down       int
	Total      int
}

// IsValidVoteValue reports whether v is one of -1, 0, 1.
func IsValidVoteValue(v int) bool {
	return v == VoteDown || v == VoteMid || v == VoteUp
}

// TallyVotes derives stats from raw vote values.
func TallyVotes(itemID uuid.UUID, values []int) VoteStats {
	s := VoteStats{MenuItemID: itemID}
	for _, v := range values {
		switch v {
		case VoteUp:
			s.Up++
		case VoteMid:
			s.Mid++
		case VoteDown:
			s.Down++
		}
	}
	s.Total = s.Up + s.Mid + s.Down
	return s
}

// CastResult is the outcome of a cast or update: the stored vote and the
// freshly derived stats for its item.
type CastResult struct {
	Vote  *Vote
	Stats VoteStats
}
