package ranking

import (
	"context"
	"sort"

	"github.com/duelboard/duelboard/internal/domain/content"
)

// A Service that serves the two leaderboards. Both views are recomputed on
// every call from the store's current state; nothing is cached, so a read
// issued after a committed vote sees that vote.
type Service interface {
	// ByRating returns every entry ordered by rating, highest first, each
	// annotated with its 1-based position. Ties keep the order the store
	// returned them in.
	ByRating(ctx context.Context) ([]RatingRanked, error)

	// ByApproval returns every entry that has been voted on at least once,
	// ordered by approval ratio (wins over total), highest first.
	ByApproval(ctx context.Context) ([]ApprovalRanked, error)
}

func NewService(contents content.Service) Service {
	return &impl{contents: contents}
}

type impl struct {
	contents content.Service
}

func (s *impl) ByRating(ctx context.Context) ([]RatingRanked, error) {
	entries, err := s.contents.List(ctx)
	if err != nil {
		return nil, err
	}
	// The store already sorts by rating; the stable re-sort pins down tie
	// order regardless of how the store breaks them.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Tally.Rating > entries[j].Tally.Rating
	})
	ranked := make([]RatingRanked, 0, len(entries))
	for i, entry := range entries {
		ranked = append(ranked, RatingRanked{
			Entry:    entry,
			Position: Position(i + 1),
		})
	}
	return ranked, nil
}

func (s *impl) ByApproval(ctx context.Context) ([]ApprovalRanked, error) {
	entries, err := s.contents.List(ctx)
	if err != nil {
		return nil, err
	}
	ranked := make([]ApprovalRanked, 0, len(entries))
	for _, entry := range entries {
		if entry.Tally.Total == 0 {
			continue
		}
		ranked = append(ranked, ApprovalRanked{
			Entry:         entry,
			ApprovalRatio: entry.Tally.ApprovalRatio(),
			NetScore:      entry.Tally.NetScore(),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ApprovalRatio > ranked[j].ApprovalRatio
	})
	return ranked, nil
}
