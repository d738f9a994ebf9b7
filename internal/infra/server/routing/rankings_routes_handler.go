package routing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	rankingController "github.com/duelboard/duelboard/internal/api/controllers/ranking"
	"github.com/duelboard/duelboard/internal/config"
)

var rankingsRootPath = "/rankings"

type RankingsRoutesHandler struct {
	AuthSettings *config.Auth
	Controller   rankingController.Controller
}

func (h *RankingsRoutesHandler) RegisterRoutes(ginEngine *gin.Engine) {
	routerGroup := newGroup(rankingsRootPath, h.AuthSettings, ginEngine)

	routerGroup.GET("/rating", h.byRating)
	routerGroup.GET("/approval", h.byApproval)
}

// @Summary Rating leaderboard
// @ID get-rating-ranking
// @Tags rankings
// @Description Retrieves all entries ordered by rating, highest first, with 1-based positions
// @Accept  json
// @Produce  json
// @Success 200 {array} ranking.RatingRanked
// @Router /rankings/rating [get]
func (h *RankingsRoutesHandler) byRating(c *gin.Context) {
	if ranked, apiErr := h.Controller.ByRating(c.Request.Context()); apiErr == nil {
		c.JSON(http.StatusOK, ranked)
	} else {
		c.JSON(apiErr.StatusCode, apiErr.Body)
	}
}

// @Summary Approval leaderboard
// @ID get-approval-ranking
// @Tags rankings
// @Description Retrieves entries with at least one vote, ordered by approval ratio, highest first
// @Accept  json
// @Produce  json
// @Success 200 {array} ranking.ApprovalRanked
// @Router /rankings/approval [get]
func (h *RankingsRoutesHandler) byApproval(c *gin.Context) {
	if ranked, apiErr := h.Controller.ByApproval(c.Request.Context()); apiErr == nil {
		c.JSON(http.StatusOK, ranked)
	} else {
		c.JSON(apiErr.StatusCode, apiErr.Body)
	}
}
