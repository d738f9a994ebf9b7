package routing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	stackController "github.com/duelboard/duelboard/internal/api/controllers/stack"
	"github.com/duelboard/duelboard/internal/config"
)

var stackRootPath = "/stack"

type StackRoutesHandler struct {
	AuthSettings *config.Auth
	Controller   stackController.Controller
}

func (h *StackRoutesHandler) RegisterRoutes(ginEngine *gin.Engine) {
	routerGroup := newGroup(stackRootPath, h.AuthSettings, ginEngine)

	routerGroup.GET("", h.pair)
}

// @Summary Deal a comparison pair
// @ID get-stack
// @Tags stack
// @Description Deals the acting user a random pair of entries they do not own. An empty array means there is nothing to vote on.
// @Accept  json
// @Produce  json
// @Param X-DUELBOARD-VOTER-ID header string true "Acting user Id"
// @Success 200 {array} content.Entry
// @Failure 404 {object} common.Body "User does not exist"
// @Router /stack [get]
func (h *StackRoutesHandler) pair(c *gin.Context) {
	if voterId, apiErr := getVoterIdOrErr(c); apiErr != nil {
		HandleApiErr(c, apiErr)
	} else {
		if pair, apiErr := h.Controller.Pair(c.Request.Context(), *voterId); apiErr == nil {
			c.JSON(http.StatusOK, pair)
		} else {
			c.JSON(apiErr.StatusCode, apiErr.Body)
		}
	}
}
