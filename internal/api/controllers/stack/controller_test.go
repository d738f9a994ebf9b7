package stack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duelboard/duelboard/internal/domain/content"
	domainUser "github.com/duelboard/duelboard/internal/domain/user"
)

type mockStackService struct {
	pairCalled   uint
	pairOverride func() ([]content.Entry, error)
}

func (m *mockStackService) Pair(ctx context.Context, voterId domainUser.Id) ([]content.Entry, error) {
	m.pairCalled++
	if m.pairOverride != nil {
		return m.pairOverride()
	}
	return []content.Entry{content.MockDomainEntry, content.MockDomainEntry}, nil
}

func Test_stackControllerImpl_Pair(t *testing.T) {
	c := New(&mockStackService{}, &domainUser.MockUsersService{})
	got, apiErr := c.Pair(context.Background(), domainUser.MockDomainUser.ID)
	assert.Nil(t, apiErr)
	assert.Len(t, got, 2)
}

func Test_stackControllerImpl_Pair_empty(t *testing.T) {
	svc := mockStackService{
		pairOverride: func() ([]content.Entry, error) {
			return nil, nil
		},
	}
	c := New(&svc, &domainUser.MockUsersService{})
	got, apiErr := c.Pair(context.Background(), domainUser.MockDomainUser.ID)
	assert.Nil(t, apiErr)
	// an empty stack renders as an empty list, not an error
	assert.Len(t, got, 0)
}

func Test_stackControllerImpl_Pair_unknownVoter(t *testing.T) {
	users := domainUser.MockUsersService{
		GetOverride: func() (*domainUser.User, error) {
			return nil, domainUser.NotFound{ID: "ghost"}
		},
	}
	svc := mockStackService{}
	c := New(&svc, &users)
	_, apiErr := c.Pair(context.Background(), "ghost")
	assert.EqualValues(t, 404, apiErr.StatusCode)
	assert.EqualValues(t, 0, svc.pairCalled)
}
