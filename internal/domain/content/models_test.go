package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateId(t *testing.T) {
	id := GenerateId()
	parsed, err := IdFromString(string(id))
	require.NoError(t, err)
	assert.EqualValues(t, id, *parsed)
}

func TestIdFromString(t *testing.T) {
	tests := []struct {
		name    string
		give    string
		wantErr bool
	}{
		{"generated-looking id", "5dbb5523b30b47013588f96d5dbb5523", false},
		{"empty", "", true},
		{"too short", "abc123", true},
		{"upper case hex", "5DBB5523B30B47013588F96D5DBB5523", true},
		{"non-hex chars", "zzzz5523b30b47013588f96d5dbb5523", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IdFromString(tt.give)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTally_Consistent(t *testing.T) {
	assert.True(t, (&Tally{Total: 0, Wins: 0, Losses: 0}).Consistent())
	assert.True(t, (&Tally{Total: 5, Wins: 3, Losses: 2}).Consistent())
	assert.False(t, (&Tally{Total: 5, Wins: 3, Losses: 3}).Consistent())
}

func TestTally_derivedScores(t *testing.T) {
	tally := Tally{Total: 4, Wins: 3, Losses: 1}
	assert.InDelta(t, 0.75, tally.ApprovalRatio(), 1e-12)
	assert.EqualValues(t, 2, tally.NetScore())

	losing := Tally{Total: 3, Wins: 0, Losses: 3}
	assert.EqualValues(t, -3, losing.NetScore())
}
