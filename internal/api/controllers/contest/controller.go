package contest

import (
	"context"
	"net/http"
	"time"

	"github.com/duelboard/duelboard/internal/api/models/common"
	apiContest "github.com/duelboard/duelboard/internal/api/models/contest"
	domainContest "github.com/duelboard/duelboard/internal/domain/contest"
)

// Controller is an interface that defines the methods that are available to the routing
// layer. It is framework-agnostic
type Controller interface {
	// Current returns the contest that is running right now
	Current(ctx context.Context) (*apiContest.Contest, *common.ApiError)
}

func New(contestsService domainContest.Service) Controller {
	return &impl{
		contestsService: contestsService,
		getNowUtc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

type impl struct {
	contestsService domainContest.Service
	getNowUtc       func() time.Time
}

func (c *impl) Current(ctx context.Context) (*apiContest.Contest, *common.ApiError) {
	result, err := c.contestsService.Current(ctx)
	if err != nil {
		return nil, handleErr(err)
	}
	rendered := apiContest.FromDomainContest(result, c.getNowUtc())
	return &rendered, nil
}

func handleErr(err error) *common.ApiError {
	switch v := err.(type) {
	case domainContest.NoCurrentContest:
		return notFound(v)
	case domainContest.NotFound:
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
