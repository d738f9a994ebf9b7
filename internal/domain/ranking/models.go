package ranking

import (
	"github.com/duelboard/duelboard/internal/domain/content"
)

// Position in a leaderboard, 1-based
type Position uint

// RatingRanked is one row of the rating leaderboard
type RatingRanked struct {
	Entry    content.Entry
	Position Position
}

// ApprovalRanked is one row of the approval leaderboard. NetScore is
// exposed alongside the ratio but is not the sort key; ordering is by
// ratio only.
type ApprovalRanked struct {
	Entry         content.Entry
	ApprovalRatio float64
	NetScore      int64
}
