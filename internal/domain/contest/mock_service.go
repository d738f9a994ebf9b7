package contest

import (
	"context"
	"time"
)

var MockDomainContest = Contest{
	ID:      "mock-contest",
	Title:   "mock",
	Start:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	End:     time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
	Current: true,
}

type MockContestsService struct {
	GetCalled       uint
	GetOverride     func() (*Contest, error)
	CurrentCalled   uint
	CurrentOverride func() (*Contest, error)
}

func (m *MockContestsService) Get(ctx context.Context, id Id) (*Contest, error) {
	m.GetCalled++
	if m.GetOverride != nil {
		return m.GetOverride()
	} else {
		return &MockDomainContest, nil
	}
}

func (m *MockContestsService) Current(ctx context.Context) (*Contest, error) {
	m.CurrentCalled++
	if m.CurrentOverride != nil {
		return m.CurrentOverride()
	} else {
		return &MockDomainContest, nil
	}
}
