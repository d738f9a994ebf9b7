package vote

import (
	"fmt"
	"time"

	"github.com/duelboard/duelboard/internal/domain/content"
	"github.com/duelboard/duelboard/internal/domain/user"
)

// A vote event as persisted: the immutable audit record of one accepted
// pairwise comparison. Never mutated after creation.
type Event struct {
	ID      content.VoteEventId
	Voter   user.Id
	Winner  content.Id
	Loser   content.Id
	Created time.Time
}

// Receipt acknowledges an accepted vote to the caller
type Receipt struct {
	// Modified is the number of entries whose tallies changed. Always 2 on
	// success; clients display it.
	Modified uint
	VoteID   content.VoteEventId
}

// <-- Domain Errors

// SelfVote is returned when a voter owns one of the compared entries
type SelfVote struct {
	Voter user.Id
	Entry content.Id
}

func (e SelfVote) Error() string {
	return fmt.Sprintf("Self-vote not permitted: voter [%v] owns entry [%v]", e.Voter, e.Entry)
}

// SameContent is returned when winner and loser are the same entry
type SameContent struct {
	ID content.Id
}

func (e SameContent) Error() string {
	return fmt.Sprintf("Winner and loser must differ, got [%v] twice", e.ID)
}

//     Errors -->
