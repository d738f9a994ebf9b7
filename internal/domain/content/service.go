package content

import (
	"context"
	"fmt"

	"github.com/duelboard/duelboard/internal/domain/contest"
	"github.com/duelboard/duelboard/internal/domain/user"
)

// A Service that takes care of the persistence of content Entries and the
// vote events that reference them. This is the boundary the rating engine
// sees; everything behind it is Elasticsearch.
type Service interface {
	// Persists the given NewEntry with a fresh Tally.
	//
	// Errors out with AlreadyExists if the owner already has an entry in
	// the same contest.
	Create(ctx context.Context, newEntry *NewEntry) (*Entry, error)

	// Retrieves an Entry by Id, erroring out with NotFound if no such
	// entry exists
	Get(ctx context.Context, id Id) (*Entry, error)

	// Retrieves all Entries owned by the given user, in no particular order
	ByOwner(ctx context.Context, owner user.Id) ([]Entry, error)

	// Retrieves all Entries, ordered by rating, highest first.
	//
	// Reads go straight to the store; there is no caching layer, so the
	// result reflects the last committed vote.
	List(ctx context.Context) ([]Entry, error)

	// Sample retrieves up to size Entries chosen uniformly at random from
	// entries NOT owned by the given user. Each call is an independent
	// sample; nothing about offered pairs is remembered.
	Sample(ctx context.Context, excludeOwner user.Id, size uint) ([]Entry, error)

	// CommitVote durably applies the outcome of one pairwise vote: both
	// entries' tallies are replaced with the ones passed in, conditional on
	// the Version each entry was read at, and the vote event is recorded.
	//
	// Errors out with InvalidVersion if either entry was modified since it
	// was read; in that case neither tally change remains visible. Callers
	// re-read and retry.
	CommitVote(ctx context.Context, winner TallyUpdate, loser TallyUpdate, event NewVoteEvent) (*CommittedVote, error)
}

// <-- Domain Errors

// NotFound is returned when the store cannot find an Entry by a given Id
type NotFound struct {
	ID Id
}

func (e NotFound) Error() string {
	return fmt.Sprintf("Could not find content [%v]", e.ID)
}

// AlreadyExists is returned when the service tries to create an Entry for
// an owner that already has one in the same contest
type AlreadyExists struct {
	Owner   user.Id
	Contest contest.Id
}

func (e AlreadyExists) Error() string {
	return fmt.Sprintf("User [%v] already has an entry in contest [%v]", e.Owner, e.Contest)
}

// InvalidVersion is returned when a conditional write loses against a
// concurrent writer. Retryable.
type InvalidVersion struct {
	ID Id
}

func (e InvalidVersion) Error() string {
	return fmt.Sprintf("Version provided did not match persisted version for [%v]", e.ID)
}

// InvalidPersistedData is returned when a document comes back from the
// store in a shape we can't work with
type InvalidPersistedData struct {
	PersistedData interface{}
}

func (e InvalidPersistedData) Error() string {
	return fmt.Sprintf("Invalid persisted data [%v]", e.PersistedData)
}

//     Errors -->
