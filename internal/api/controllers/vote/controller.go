package vote

import (
	"context"
	"net/http"

	"github.com/duelboard/duelboard/internal/api/models/common"
	apiVote "github.com/duelboard/duelboard/internal/api/models/vote"
	"github.com/duelboard/duelboard/internal/domain/content"
	domainUser "github.com/duelboard/duelboard/internal/domain/user"
	domainVote "github.com/duelboard/duelboard/internal/domain/vote"
)

// Controller is an interface that defines the methods that are available to the routing
// layer. It is framework-agnostic
type Controller interface {
	// Submit applies a pairwise vote on behalf of the given voter
	Submit(ctx context.Context, voterId domainUser.Id, newVote *apiVote.NewVote) (*apiVote.Receipt, *common.ApiError)
}

func New(votesService domainVote.Service) Controller {
	return &impl{votesService: votesService}
}

type impl struct {
	votesService domainVote.Service
}

func (c *impl) Submit(ctx context.Context, voterId domainUser.Id, newVote *apiVote.NewVote) (*apiVote.Receipt, *common.ApiError) {
	winnerId, err := content.IdFromString(newVote.Win)
	if err != nil {
		return nil, badRequest(err)
	}
	loserId, err := content.IdFromString(newVote.Los)
	if err != nil {
		return nil, badRequest(err)
	}
	result, err := c.votesService.Submit(ctx, voterId, *winnerId, *loserId)
	if err != nil {
		return nil, handleErr(err)
	} else {
		r := apiVote.FromDomainReceipt(result)
		return &r, nil
	}
}

func handleErr(err error) *common.ApiError {
	switch v := err.(type) {
	case domainUser.NotFound:
		return notFound(v)
	case content.NotFound:
		return notFound(v)
	case domainVote.SameContent:
		return badRequest(v)
	case domainVote.SelfVote:
		return forbidden(v)
	case content.InvalidVersion:
		return versionConflict(v)
	case content.InvalidPersistedData:
		return unhandledErr(v)
	default:
		return unhandledErr(v)
	}
}

func badRequest(err error) *common.ApiError {
	return &common.ApiError{
		StatusCode: http.StatusBadRequest,
		Body: common.Body{
			Message: err.Error(),
		},
	}
}

func forbidden(err error) *common.ApiError {
	return &common.ApiError{
		StatusCode: http.StatusForbidden,
		Body: common.Body{
			Message: err.Error(),
		},
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

func versionConflict(err error) *common.ApiError {
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
