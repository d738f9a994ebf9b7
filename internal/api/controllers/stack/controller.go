package stack

import (
	"context"
	"net/http"

	"github.com/duelboard/duelboard/internal/api/models/common"
	apiContent "github.com/duelboard/duelboard/internal/api/models/content"
	domainStack "github.com/duelboard/duelboard/internal/domain/stack"
	domainUser "github.com/duelboard/duelboard/internal/domain/user"
)

// Controller is an interface that defines the methods that are available to the routing
// layer. It is framework-agnostic
type Controller interface {
	// Pair deals the given voter a pair of entries to compare. An empty
	// result means there is nothing for them to vote on right now.
	Pair(ctx context.Context, voterId domainUser.Id) ([]apiContent.Entry, *common.ApiError)
}

func New(stackService domainStack.Service, usersService domainUser.Service) Controller {
	return &impl{
		stackService: stackService,
		usersService: usersService,
	}
}

type impl struct {
	stackService domainStack.Service
	usersService domainUser.Service
}

func (c *impl) Pair(ctx context.Context, voterId domainUser.Id) ([]apiContent.Entry, *common.ApiError) {
	if _, err := c.usersService.Get(ctx, voterId); err != nil {
		return nil, handleErr(err)
	}
	result, err := c.stackService.Pair(ctx, voterId)
	if err != nil {
		return nil, handleErr(err)
	}
	pair := make([]apiContent.Entry, 0, len(result))
	for i := range result {
		pair = append(pair, apiContent.FromDomainEntry(&result[i]))
	}
	return pair, nil
}

func handleErr(err error) *common.ApiError {
	switch v := err.(type) {
	case domainUser.NotFound:
		return notFound(v)
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

func unhandledErr(e error) *common.ApiError {
	return &common.ApiError{
		StatusCode: http.StatusInternalServerError,
		Body: common.Body{
			Message: e.Error(),
		},
	}
}
