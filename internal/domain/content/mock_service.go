package content

import (
	"context"

	"github.com/duelboard/duelboard/internal/domain/user"
)

var MockDomainEntry = Entry{
	ID:      "mock",
	Owner:   "mock-owner",
	Contest: "mock-contest",
	Tally: Tally{
		Total:  0,
		Wins:   0,
		Losses: 0,
		Rating: 1500,
	},
}

type MockContentsService struct {
	CreateCalled       uint
	CreateOverride     func() (*Entry, error)
	GetCalled          uint
	GetOverride        func(id Id) (*Entry, error)
	ByOwnerCalled      uint
	ByOwnerOverride    func() ([]Entry, error)
	ListCalled         uint
	ListOverride       func() ([]Entry, error)
	SampleCalled       uint
	SampleOverride     func() ([]Entry, error)
	CommitVoteCalled   uint
	CommitVoteOverride func(winner TallyUpdate, loser TallyUpdate, event NewVoteEvent) (*CommittedVote, error)
}

func (m *MockContentsService) Create(ctx context.Context, newEntry *NewEntry) (*Entry, error) {
	m.CreateCalled++
	if m.CreateOverride != nil {
		return m.CreateOverride()
	} else {
		return &MockDomainEntry, nil
	}
}

func (m *MockContentsService) Get(ctx context.Context, id Id) (*Entry, error) {
	m.GetCalled++
	if m.GetOverride != nil {
		return m.GetOverride(id)
	} else {
		return &MockDomainEntry, nil
	}
}

func (m *MockContentsService) ByOwner(ctx context.Context, owner user.Id) ([]Entry, error) {
	m.ByOwnerCalled++
	if m.ByOwnerOverride != nil {
		return m.ByOwnerOverride()
	} else {
		return []Entry{MockDomainEntry}, nil
	}
}

func (m *MockContentsService) List(ctx context.Context) ([]Entry, error) {
	m.ListCalled++
	if m.ListOverride != nil {
		return m.ListOverride()
	} else {
		return []Entry{MockDomainEntry}, nil
	}
}

func (m *MockContentsService) Sample(ctx context.Context, excludeOwner user.Id, size uint) ([]Entry, error) {
	m.SampleCalled++
	if m.SampleOverride != nil {
		return m.SampleOverride()
	} else {
		return []Entry{MockDomainEntry}, nil
	}
}

func (m *MockContentsService) CommitVote(ctx context.Context, winner TallyUpdate, loser TallyUpdate, event NewVoteEvent) (*CommittedVote, error) {
	m.CommitVoteCalled++
	if m.CommitVoteOverride != nil {
		return m.CommitVoteOverride(winner, loser, event)
	} else {
		return &CommittedVote{EventID: "mock-event", Modified: 2}, nil
	}
}
