package vote

import (
	"context"
	"time"

	"github.com/duelboard/duelboard/internal/domain/content"
	"github.com/duelboard/duelboard/internal/domain/user"
)

var MockDomainReceipt = Receipt{
	Modified: 2,
	VoteID:   "mock-event",
}

type MockVotesService struct {
	SubmitCalled   uint
	SubmitOverride func() (*Receipt, error)
}

func (m *MockVotesService) Submit(ctx context.Context, voterId user.Id, winnerId content.Id, loserId content.Id) (*Receipt, error) {
	m.SubmitCalled++
	if m.SubmitOverride != nil {
		return m.SubmitOverride()
	} else {
		return &MockDomainReceipt, nil
	}
}

type MockArchiver struct {
	ArchiveOldEventsCalled   uint
	ArchiveOldEventsOverride func(createdBefore time.Time) error
}

func (m *MockArchiver) ArchiveOldEvents(ctx context.Context, createdBefore time.Time, scrollSize uint, scrollTtl time.Duration) error {
	m.ArchiveOldEventsCalled++
	if m.ArchiveOldEventsOverride != nil {
		return m.ArchiveOldEventsOverride(createdBefore)
	} else {
		return nil
	}
}
