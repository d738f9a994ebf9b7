package content

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/duelboard/duelboard/internal/domain/contest"
	"github.com/duelboard/duelboard/internal/domain/metadata"
	"github.com/duelboard/duelboard/internal/domain/user"
)

// Id for a content entry that has been persisted
type Id string

// Generates a random id
func GenerateId() Id {
	return Id(strings.ReplaceAll(uuid.New().String(), "-", ""))
}

const idLength = 32

// IdFromString takes a string and returns a content Id if it looks like one
// we would have generated, otherwise returns an InvalidId error.
func IdFromString(s string) (*Id, error) {
	var errs []error

	if len(s) != idLength {
		errs = append(errs, fmt.Errorf("length is not [%d]", idLength))
	}
	for _, r := range s {
		if !(('0' <= r && r <= '9') || ('a' <= r && r <= 'f')) {
			errs = append(errs, fmt.Errorf("contains non lower-case-hex char [%c]", r))
			break
		}
	}
	if len(errs) == 0 {
		id := Id(s)
		return &id, nil
	} else {
		return nil, &InvalidId{Errors: errs}
	}
}

type InvalidId struct {
	Errors []error
}

func (i *InvalidId) Error() string {
	return fmt.Sprintf("Illegal content id: [%v]", i.Errors)
}

// Kind of a payload. Only text for now; the url field leaves room for
// image payloads later.
type PayloadType string

const TextPayload PayloadType = "text"

// What a user actually submitted to a contest
type Payload struct {
	Data string
	Type PayloadType
	Url  string
}

// Count of votes. Never decremented.
type Count uint64

// Rating is the skill estimate attached to an entry. A plain float, no
// clamping or rounding anywhere.
type Rating float64

// Tally is the voting state of a single entry. Total always equals
// Wins + Losses; it is mutated exclusively through the vote service's
// commit path.
type Tally struct {
	Total  Count
	Wins   Count
	Losses Count
	Rating Rating
}

// Consistent returns whether the win/loss counts add up
func (t *Tally) Consistent() bool {
	return t.Total == t.Wins+t.Losses
}

// ApprovalRatio returns Wins over Total. Only call on a Tally with at
// least one vote.
func (t *Tally) ApprovalRatio() float64 {
	return float64(t.Wins) / float64(t.Total)
}

// NetScore returns Wins minus Losses
func (t *Tally) NetScore() int64 {
	return int64(t.Wins) - int64(t.Losses)
}

// An Entry that has yet to be created
type NewEntry struct {
	Owner   user.Id
	Contest contest.Id
	Payload Payload
}

// An Entry that has already been persisted
//
// an Entry is identified uniquely by its ID and versioned according to
// its Metadata Version
type Entry struct {
	ID       Id
	Owner    user.Id
	Contest  contest.Id
	Payload  Payload
	Tally    Tally
	Metadata metadata.Metadata
}

// Id for a vote event that has been persisted
type VoteEventId string

// A vote event that has yet to be recorded. Winner and Loser are the entry
// ids as they were resolved by the coordinator, not raw request input.
type NewVoteEvent struct {
	Voter  user.Id
	Winner Id
	Loser  Id
}

// TallyUpdate is one half of a pair commit: the Entry exactly as it was
// read (its Version guards the write, its Tally allows rolling back) and
// the Tally that should replace it.
type TallyUpdate struct {
	Entry Entry
	Tally Tally
}

// CommittedVote acknowledges a successful pair commit: how many entries
// were modified (always 2 on success) and the id of the audit record.
type CommittedVote struct {
	EventID  VoteEventId
	Modified uint
}
