package ranking

import (
	apiContent "github.com/duelboard/duelboard/internal/api/models/content"
	"github.com/duelboard/duelboard/internal/domain/ranking"
)

// RatingRanked is one row of the rating leaderboard
type RatingRanked struct {
	Position uint             `json:"position" example:"1"`
	Entry    apiContent.Entry `json:"entry"`
}

// ApprovalRanked is one row of the approval leaderboard
type ApprovalRanked struct {
	ApprovalRatio float64          `json:"approval_ratio" example:"0.75"`
	NetScore      int64            `json:"net_score" example:"5"`
	Entry         apiContent.Entry `json:"entry"`
}

func FromDomainRatingRanked(r *ranking.RatingRanked) RatingRanked {
	return RatingRanked{
		Position: uint(r.Position),
		Entry:    apiContent.FromDomainEntry(&r.Entry),
	}
}

func FromDomainApprovalRanked(r *ranking.ApprovalRanked) ApprovalRanked {
	return ApprovalRanked{
		ApprovalRatio: r.ApprovalRatio,
		NetScore:      r.NetScore,
		Entry:         apiContent.FromDomainEntry(&r.Entry),
	}
}
