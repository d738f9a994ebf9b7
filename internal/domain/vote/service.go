package vote

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/duelboard/duelboard/internal/config"
	"github.com/duelboard/duelboard/internal/domain/content"
	"github.com/duelboard/duelboard/internal/domain/rating"
	"github.com/duelboard/duelboard/internal/domain/user"
)

// A Service that accepts proposed vote outcomes, the only thing in the
// system allowed to change an entry's Tally.
type Service interface {
	// Submit validates and durably applies one pairwise outcome.
	//
	// Errors out if
	//  1. The voter does not resolve to a user
	//  2. Winner or loser does not resolve to an entry
	//  3. Winner and loser are the same entry
	//  4. The voter owns either entry
	//  5. The commit keeps losing against concurrent writers even after
	//     retrying (content.InvalidVersion, retryable by the caller)
	//
	// On success both tallies have been updated and exactly one vote event
	// has been recorded; on any error, no state has changed.
	Submit(ctx context.Context, voterId user.Id, winnerId content.Id, loserId content.Id) (*Receipt, error)
}

func NewService(contents content.Service, users user.Service, settings config.VotingDefaults) Service {
	return &impl{
		contents: contents,
		users:    users,
		settings: settings,
	}
}

type impl struct {
	contents content.Service
	users    user.Service
	settings config.VotingDefaults
}

func (s *impl) Submit(ctx context.Context, voterId user.Id, winnerId content.Id, loserId content.Id) (*Receipt, error) {
	voter, err := s.users.Get(ctx, voterId)
	if err != nil {
		return nil, err
	}

	// The whole read-compute-commit cycle retries on version conflicts:
	// a retry must re-read so the rating maths never runs on stale tallies.
	var lastErr error
	for attempt := uint(0); attempt <= s.settings.VersionConflictRetryTimes; attempt++ {
		receipt, err := s.submitOnce(ctx, voter.ID, winnerId, loserId)
		if err == nil {
			return receipt, nil
		}
		if _, isConflict := err.(content.InvalidVersion); !isConflict {
			return nil, err
		}
		lastErr = err
		log.Debug().
			Str("winner", string(winnerId)).
			Str("loser", string(loserId)).
			Uint("attempt", attempt+1).
			Msg("Vote commit lost against a concurrent writer, retrying")
	}
	return nil, lastErr
}

func (s *impl) submitOnce(ctx context.Context, voterId user.Id, winnerId content.Id, loserId content.Id) (*Receipt, error) {
	winner, err := s.contents.Get(ctx, winnerId)
	if err != nil {
		return nil, err
	}
	loser, err := s.contents.Get(ctx, loserId)
	if err != nil {
		return nil, err
	}

	if winner.ID == loser.ID {
		return nil, SameContent{ID: winner.ID}
	}
	if winner.Owner == voterId {
		return nil, SelfVote{Voter: voterId, Entry: winner.ID}
	}
	if loser.Owner == voterId {
		return nil, SelfVote{Voter: voterId, Entry: loser.ID}
	}

	newWinnerTally, newLoserTally := rating.ApplyOutcome(winner.Tally, loser.Tally)

	committed, err := s.contents.CommitVote(ctx,
		content.TallyUpdate{Entry: *winner, Tally: newWinnerTally},
		content.TallyUpdate{Entry: *loser, Tally: newLoserTally},
		content.NewVoteEvent{
			Voter:  voterId,
			Winner: winner.ID,
			Loser:  loser.ID,
		})
	if err != nil {
		return nil, err
	}
	return &Receipt{
		Modified: committed.Modified,
		VoteID:   committed.EventID,
	}, nil
}
