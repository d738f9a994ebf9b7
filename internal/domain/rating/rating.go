// rating implements the Elo-family update that turns pairwise outcomes into
// skill estimates. Everything in here is pure: no I/O, no clock, no store.
package rating

import (
	"math"

	"github.com/duelboard/duelboard/internal/domain/content"
)

const (
	// R0 is the rating every entry starts out with
	R0 content.Rating = 1500
	// K is the asymptotic per-vote adjustment magnitude
	K float64 = 20
)

// SeedTally returns the Tally an entry is born with
func SeedTally() content.Tally {
	return content.Tally{
		Total:  0,
		Wins:   0,
		Losses: 0,
		Rating: R0,
	}
}

// ExpectedScore returns the predicted win probability of a against b,
// strictly between 0 and 1. ExpectedScore(a, b) + ExpectedScore(b, a) == 1.
func ExpectedScore(ratingA, ratingB content.Rating) float64 {
	return 1 / (1 + math.Pow(10, float64(ratingB-ratingA)/400))
}

// KFactor returns the adjustment magnitude for an entry that has played
// gamesPlayed comparisons, counting the one being processed. Decreases with
// experience but asymptotes to K instead of vanishing.
//
// gamesPlayed must be at least 1; enforcing that is on the caller, which in
// practice always passes Total + 1.
func KFactor(gamesPlayed content.Count) float64 {
	return K + K/float64(gamesPlayed)
}

// UpdateRating moves a rating towards the actual outcome: 1 for a win, 0
// for a loss.
func UpdateRating(current content.Rating, k float64, won bool, expected float64) content.Rating {
	var actual float64
	if won {
		actual = 1
	}
	return current + content.Rating(k*(actual-expected))
}

// ApplyOutcome computes the post-vote tallies for both sides of one
// comparison. Expected scores use the ratings as they were before the vote;
// each side's k-factor uses its own games count incremented for this vote.
func ApplyOutcome(winner content.Tally, loser content.Tally) (content.Tally, content.Tally) {
	winnerGames := winner.Total + 1
	loserGames := loser.Total + 1

	winnerExpected := ExpectedScore(winner.Rating, loser.Rating)
	loserExpected := ExpectedScore(loser.Rating, winner.Rating)

	newWinner := content.Tally{
		Total:  winnerGames,
		Wins:   winner.Wins + 1,
		Losses: winner.Losses,
		Rating: UpdateRating(winner.Rating, KFactor(winnerGames), true, winnerExpected),
	}
	newLoser := content.Tally{
		Total:  loserGames,
		Wins:   loser.Wins,
		Losses: loser.Losses + 1,
		Rating: UpdateRating(loser.Rating, KFactor(loserGames), false, loserExpected),
	}
	return newWinner, newLoser
}
