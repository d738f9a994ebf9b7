package content

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apiContent "github.com/duelboard/duelboard/internal/api/models/content"
	domainContent "github.com/duelboard/duelboard/internal/domain/content"
	domainContest "github.com/duelboard/duelboard/internal/domain/contest"
	domainUser "github.com/duelboard/duelboard/internal/domain/user"
)

func TestNewContentsController(t *testing.T) {
	assert.NotPanics(t, func() {
		New(&domainContent.MockContentsService{}, &domainContest.MockContestsService{}, &domainUser.MockUsersService{})
	})
}

func Test_handleErr(t *testing.T) {
	type args struct {
		err error
	}
	tests := []struct {
		name     string
		args     args
		wantCode int
	}{
		{
			"random errors should 500",
			args{
				fmt.Errorf("wtf"),
			},
			500,
		},
		{
			"content NotFound errors should 404",
			args{
				domainContent.NotFound{},
			},
			404,
		},
		{
			"user NotFound errors should 404",
			args{
				domainUser.NotFound{},
			},
			404,
		},
		{
			"AlreadyExists errors should 409",
			args{
				domainContent.AlreadyExists{},
			},
			409,
		},
		{
			"NoCurrentContest errors should 409",
			args{
				domainContest.NoCurrentContest{},
			},
			409,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := handleErr(tt.args.err)
			assert.EqualValues(t, tt.wantCode, got.StatusCode)
		})
	}
}

func Test_contentsControllerImpl_Create(t *testing.T) {
	newEntry := apiContent.NewEntry{Data: "a joke"}

	t.Run("should resolve the current contest and create", func(t *testing.T) {
		contents := domainContent.MockContentsService{}
		contests := domainContest.MockContestsService{}
		c := New(&contents, &contests, &domainUser.MockUsersService{})

		got, apiErr := c.Create(context.Background(), domainUser.MockDomainUser.ID, &newEntry)
		assert.Nil(t, apiErr)
		assert.EqualValues(t, 1, contests.CurrentCalled)
		assert.EqualValues(t, 1, contents.CreateCalled)
		assert.EqualValues(t, string(domainContent.MockDomainEntry.ID), got.ID)
	})

	t.Run("should 409 when there is no current contest", func(t *testing.T) {
		contents := domainContent.MockContentsService{}
		contests := domainContest.MockContestsService{
			CurrentOverride: func() (*domainContest.Contest, error) {
				return nil, domainContest.NoCurrentContest{}
			},
		}
		c := New(&contents, &contests, &domainUser.MockUsersService{})

		_, apiErr := c.Create(context.Background(), domainUser.MockDomainUser.ID, &newEntry)
		assert.EqualValues(t, 409, apiErr.StatusCode)
		assert.EqualValues(t, 0, contents.CreateCalled)
	})

	t.Run("should 404 on an unknown owner", func(t *testing.T) {
		contents := domainContent.MockContentsService{}
		users := domainUser.MockUsersService{
			GetOverride: func() (*domainUser.User, error) {
				return nil, domainUser.NotFound{ID: "ghost"}
			},
		}
		c := New(&contents, &domainContest.MockContestsService{}, &users)

		_, apiErr := c.Create(context.Background(), "ghost", &newEntry)
		assert.EqualValues(t, 404, apiErr.StatusCode)
		assert.EqualValues(t, 0, contents.CreateCalled)
	})
}

func Test_contentsControllerImpl_Get(t *testing.T) {
	t.Run("should render the entry", func(t *testing.T) {
		c := New(&domainContent.MockContentsService{}, &domainContest.MockContestsService{}, &domainUser.MockUsersService{})
		got, apiErr := c.Get(context.Background(), domainContent.MockDomainEntry.ID)
		assert.Nil(t, apiErr)
		assert.EqualValues(t, string(domainContent.MockDomainEntry.ID), got.ID)
	})

	t.Run("should 404 when there is no such entry", func(t *testing.T) {
		contents := domainContent.MockContentsService{
			GetOverride: func(id domainContent.Id) (*domainContent.Entry, error) {
				return nil, domainContent.NotFound{ID: id}
			},
		}
		c := New(&contents, &domainContest.MockContestsService{}, &domainUser.MockUsersService{})
		_, apiErr := c.Get(context.Background(), "nope")
		assert.EqualValues(t, 404, apiErr.StatusCode)
	})
}

func Test_contentsControllerImpl_List(t *testing.T) {
	contents := domainContent.MockContentsService{}
	c := New(&contents, &domainContest.MockContestsService{}, &domainUser.MockUsersService{})
	got, apiErr := c.List(context.Background())
	assert.Nil(t, apiErr)
	assert.Len(t, got, 1)
	assert.EqualValues(t, 1, contents.ListCalled)
}

func Test_contentsControllerImpl_ByOwner(t *testing.T) {
	c := New(&domainContent.MockContentsService{}, &domainContest.MockContestsService{}, &domainUser.MockUsersService{})
	got, apiErr := c.ByOwner(context.Background(), domainUser.MockDomainUser.ID)
	assert.Nil(t, apiErr)
	assert.Len(t, got, 1)
}
