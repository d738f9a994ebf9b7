package user

import (
	"context"
)

var MockDomainUser = User{
	ID:   "mock-user",
	Name: "mock",
}

type MockUsersService struct {
	GetCalled   uint
	GetOverride func() (*User, error)
}

func (m *MockUsersService) Get(ctx context.Context, id Id) (*User, error) {
	m.GetCalled++
	if m.GetOverride != nil {
		return m.GetOverride()
	} else {
		return &MockDomainUser, nil
	}
}
