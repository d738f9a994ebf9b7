package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duelboard/duelboard/internal/domain/content"
)

func TestExpectedScore_symmetry(t *testing.T) {
	pairs := []struct {
		a content.Rating
		b content.Rating
	}{
		{1500, 1500},
		{1600, 1400},
		{1400, 1600},
		{2200, 900},
		{0, 0},
		{-100, 350.5},
	}
	for _, pair := range pairs {
		assert.InDelta(t, 1, ExpectedScore(pair.a, pair.b)+ExpectedScore(pair.b, pair.a), 1e-12)
	}
}

func TestExpectedScore_evenMatch(t *testing.T) {
	assert.InDelta(t, 0.5, ExpectedScore(1500, 1500), 1e-12)
}

func TestExpectedScore_bounds(t *testing.T) {
	high := ExpectedScore(3000, 100)
	low := ExpectedScore(100, 3000)
	assert.Greater(t, high, 0.5)
	assert.Less(t, high, 1.0)
	assert.Less(t, low, 0.5)
	assert.Greater(t, low, 0.0)
}

func TestKFactor(t *testing.T) {
	tests := []struct {
		name  string
		games content.Count
		want  float64
	}{
		{"first game doubles K", 1, 40},
		{"second game", 2, 30},
		{"tenth game", 10, 22},
		{"large count asymptotes towards K", 20000, 20.001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, KFactor(tt.games), 1e-9)
		})
	}
}

func TestUpdateRating(t *testing.T) {
	assert.InDelta(t, 1520, float64(UpdateRating(1500, 40, true, 0.5)), 1e-9)
	assert.InDelta(t, 1480, float64(UpdateRating(1500, 40, false, 0.5)), 1e-9)
}

// The worked example: two fresh entries at 1500, A beats B.
func TestApplyOutcome_freshEntries(t *testing.T) {
	winner, loser := ApplyOutcome(SeedTally(), SeedTally())

	assert.EqualValues(t, content.Tally{Total: 1, Wins: 1, Losses: 0, Rating: 1520}, winner)
	assert.EqualValues(t, content.Tally{Total: 1, Wins: 0, Losses: 1, Rating: 1480}, loser)
}

func TestApplyOutcome_invariantHolds(t *testing.T) {
	w := content.Tally{Total: 7, Wins: 4, Losses: 3, Rating: 1512.25}
	l := content.Tally{Total: 2, Wins: 1, Losses: 1, Rating: 1488}
	newW, newL := ApplyOutcome(w, l)

	assert.True(t, newW.Consistent())
	assert.True(t, newL.Consistent())
	assert.EqualValues(t, w.Total+1, newW.Total)
	assert.EqualValues(t, w.Wins+1, newW.Wins)
	assert.EqualValues(t, w.Losses, newW.Losses)
	assert.EqualValues(t, l.Total+1, newL.Total)
	assert.EqualValues(t, l.Wins, newL.Wins)
	assert.EqualValues(t, l.Losses+1, newL.Losses)
}

// An upset win swings harder than a favourite win.
func TestApplyOutcome_upsetSwingsHarder(t *testing.T) {
	favourite := content.Tally{Rating: 1600}
	underdog := content.Tally{Rating: 1400}

	favouriteWon, _ := ApplyOutcome(favourite, underdog)
	underdogWon, _ := ApplyOutcome(underdog, favourite)

	favouriteGain := favouriteWon.Rating - favourite.Rating
	underdogGain := underdogWon.Rating - underdog.Rating
	assert.Greater(t, float64(underdogGain), float64(favouriteGain))
}

// Zero-sum is NOT guaranteed: the two sides can carry different k-factors.
func TestApplyOutcome_perSideKFactor(t *testing.T) {
	veteran := content.Tally{Total: 99, Wins: 50, Losses: 49, Rating: 1500}
	rookie := content.Tally{Total: 0, Wins: 0, Losses: 0, Rating: 1500}

	newVeteran, newRookie := ApplyOutcome(veteran, rookie)

	// veteran's k is 20 + 20/100, rookie's is 40
	assert.InDelta(t, 1500+20.2*0.5, float64(newVeteran.Rating), 1e-9)
	assert.InDelta(t, 1500-40*0.5, float64(newRookie.Rating), 1e-9)
}
