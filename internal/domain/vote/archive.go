package vote

import (
	"context"
	"time"
)

// An Archiver moves old vote events out of the live audit index so that it
// stays lean. Events are immutable, so archiving is pure housekeeping and
// never changes what the rating engine sees.
type Archiver interface {
	// ArchiveOldEvents moves all vote events created before the given time
	// into the archive.
	//
	// Meant to be idempotent; errors can be handled by simply logging.
	ArchiveOldEvents(ctx context.Context, createdBefore time.Time, scrollSize uint, scrollTtl time.Duration) error
}
