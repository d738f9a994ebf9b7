package contest

import (
	"context"
	"fmt"
	"time"

	"github.com/duelboard/duelboard/internal/domain/metadata"
)

// Id of a persisted contest
type Id string

type Title string

// A Contest is a window of time during which content can be submitted
// and voted on. At most one contest is current at any given time.
type Contest struct {
	ID       Id
	Title    Title
	Start    time.Time
	End      time.Time
	Current  bool
	Metadata metadata.Metadata
}

// Progress returns how far along the contest is at the given time, as a
// fraction of its total duration. Not clamped; callers that ask about a
// contest that has ended get a value above 1.
func (c *Contest) Progress(now time.Time) float64 {
	duration := c.End.Sub(c.Start).Seconds()
	elapsed := now.Sub(c.Start).Seconds()
	return elapsed / duration
}

// A Service that takes care of retrieving Contests.
type Service interface {
	// Get retrieves a Contest by Id, erroring out with NotFound if
	// no such contest exists
	Get(ctx context.Context, id Id) (*Contest, error)

	// Current retrieves the contest marked as current, erroring out with
	// NoCurrentContest if there isn't one
	Current(ctx context.Context) (*Contest, error)
}

// NotFound is returned when no contest exists for a given Id
type NotFound struct {
	ID Id
}

func (e NotFound) Error() string {
	return fmt.Sprintf("Could not find contest [%v]", e.ID)
}

// NoCurrentContest is returned when no contest is marked as current
type NoCurrentContest struct{}

func (e NoCurrentContest) Error() string {
	return "There is no contest running at the moment"
}
