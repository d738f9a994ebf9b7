package ranking

import (
	"context"
	"net/http"

	"github.com/duelboard/duelboard/internal/api/models/common"
	apiRanking "github.com/duelboard/duelboard/internal/api/models/ranking"
	domainRanking "github.com/duelboard/duelboard/internal/domain/ranking"
)

// Controller is an interface that defines the methods that are available to the routing
// layer. It is framework-agnostic
type Controller interface {
	// ByRating returns the rating leaderboard
	ByRating(ctx context.Context) ([]apiRanking.RatingRanked, *common.ApiError)

	// ByApproval returns the approval leaderboard
	ByApproval(ctx context.Context) ([]apiRanking.ApprovalRanked, *common.ApiError)
}

func New(rankingsService domainRanking.Service) Controller {
	return &impl{rankingsService: rankingsService}
}

type impl struct {
	rankingsService domainRanking.Service
}

func (c *impl) ByRating(ctx context.Context) ([]apiRanking.RatingRanked, *common.ApiError) {
	result, err := c.rankingsService.ByRating(ctx)
	if err != nil {
		return nil, unhandledErr(err)
	}
	ranked := make([]apiRanking.RatingRanked, 0, len(result))
	for i := range result {
		ranked = append(ranked, apiRanking.FromDomainRatingRanked(&result[i]))
	}
	return ranked, nil
}

func (c *impl) ByApproval(ctx context.Context) ([]apiRanking.ApprovalRanked, *common.ApiError) {
	result, err := c.rankingsService.ByApproval(ctx)
	if err != nil {
		return nil, unhandledErr(err)
	}
	ranked := make([]apiRanking.ApprovalRanked, 0, len(result))
	for i := range result {
		ranked = append(ranked, apiRanking.FromDomainApprovalRanked(&result[i]))
	}
	return ranked, nil
}

func unhandledErr(e error) *common.ApiError {
	return &common.ApiError{
		StatusCode: http.StatusInternalServerError,
		Body: common.Body{
			Message: e.Error(),
		},
	}
}
