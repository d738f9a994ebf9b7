package vote

import (
	"github.com/duelboard/duelboard/internal/domain/vote"
)

// NewVote is a pairwise outcome as it comes over the wire: the entry the
// voter picked and the one they passed over.
type NewVote struct {
	Win string `json:"win" binding:"required" example:"b13faab6d47a459cae41f7b0110ac4a9"`
	Los string `json:"los" binding:"required" example:"41f7b0110ac4a9b13faab6d47a459cae"`
}

// Receipt acknowledges an applied vote
type Receipt struct {
	Modified uint   `json:"modified" example:"2"`
	VoteID   string `json:"vote_id" example:"d47a459cae41f7b0b13faab6110ac4a9"`
}

func FromDomainReceipt(r *vote.Receipt) Receipt {
	return Receipt{
		Modified: r.Modified,
		VoteID:   string(r.VoteID),
	}
}
