package content

import (
	"context"
	"net/http"

	"github.com/duelboard/duelboard/internal/api/models/common"
	apiContent "github.com/duelboard/duelboard/internal/api/models/content"
	domainContent "github.com/duelboard/duelboard/internal/domain/content"
	domainContest "github.com/duelboard/duelboard/internal/domain/contest"
	domainUser "github.com/duelboard/duelboard/internal/domain/user"
)

// Controller is an interface that defines the methods that are available to the routing
// layer. It is framework-agnostic
type Controller interface {
	// Create submits a new entry, owned by the given user, into the contest
	// that is currently running
	Create(ctx context.Context, owner domainUser.Id, newEntry *apiContent.NewEntry) (*apiContent.Entry, *common.ApiError)

	// Get returns a single entry by id
	Get(ctx context.Context, id domainContent.Id) (*apiContent.Entry, *common.ApiError)

	// List returns all entries, ordered by rating, highest first
	List(ctx context.Context) ([]apiContent.Entry, *common.ApiError)

	// ByOwner returns all entries owned by the given user
	ByOwner(ctx context.Context, owner domainUser.Id) ([]apiContent.Entry, *common.ApiError)
}

func New(contentsService domainContent.Service, contestsService domainContest.Service, usersService domainUser.Service) Controller {
	return &impl{
		contentsService: contentsService,
		contestsService: contestsService,
		usersService:    usersService,
	}
}

type impl struct {
	contentsService domainContent.Service
	contestsService domainContest.Service
	usersService    domainUser.Service
}

func (c *impl) Create(ctx context.Context, owner domainUser.Id, newEntry *apiContent.NewEntry) (*apiContent.Entry, *common.ApiError) {
	if _, err := c.usersService.Get(ctx, owner); err != nil {
		return nil, handleErr(err)
	}
	current, err := c.contestsService.Current(ctx)
	if err != nil {
		return nil, handleErr(err)
	}
	domainNewEntry := newEntry.ToDomainNewEntry(owner, current.ID)
	result, err := c.contentsService.Create(ctx, &domainNewEntry)
	if err != nil {
		return nil, handleErr(err)
	} else {
		e := apiContent.FromDomainEntry(result)
		return &e, nil
	}
}

func (c *impl) Get(ctx context.Context, id domainContent.Id) (*apiContent.Entry, *common.ApiError) {
	result, err := c.contentsService.Get(ctx, id)
	if err != nil {
		return nil, handleErr(err)
	} else {
		e := apiContent.FromDomainEntry(result)
		return &e, nil
	}
}

func (c *impl) List(ctx context.Context) ([]apiContent.Entry, *common.ApiError) {
	result, err := c.contentsService.List(ctx)
	if err != nil {
		return nil, handleErr(err)
	}
	apiEntries := make([]apiContent.Entry, 0, len(result))
	for i := range result {
		apiEntries = append(apiEntries, apiContent.FromDomainEntry(&result[i]))
	}
	return apiEntries, nil
}

func (c *impl) ByOwner(ctx context.Context, owner domainUser.Id) ([]apiContent.Entry, *common.ApiError) {
	if _, err := c.usersService.Get(ctx, owner); err != nil {
		return nil, handleErr(err)
	}
	result, err := c.contentsService.ByOwner(ctx, owner)
	if err != nil {
		return nil, handleErr(err)
	} else {
		apiEntries := make([]apiContent.Entry, 0, len(result))
		for i := range result {
			apiEntries = append(apiEntries, apiContent.FromDomainEntry(&result[i]))
		}
		return apiEntries, nil
	}
}

func handleErr(err error) *common.ApiError {
	switch v := err.(type) {
	case domainContent.NotFound:
		return notFound(v)
	case domainUser.NotFound:
		return notFound(v)
	case domainContent.AlreadyExists:
		return conflict(v)
	case domainContest.NoCurrentContest:
		return conflict(v)
	default:
		return unhandledErr(v)
	}
}

func notFound(err error) *common.ApiError {
	return &common.ApiError{
		StatusCode: http.StatusNotFound,
		Body: common.Body{
			Message: err.Error(),
		},
	}
}

func conflict(err error) *common.ApiError {
	return &common.ApiError{
		StatusCode: http.StatusConflict,
		Body: common.Body{
			Message: err.Error(),
		},
	}
}

func unhandledErr(e error) *common.ApiError {
	return &common.ApiError{
		StatusCode: http.StatusInternalServerError,
		Body: common.Body{
			Message: e.Error(),
		},
	}
}
