package routing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contestController "github.com/duelboard/duelboard/internal/api/controllers/contest"
	"github.com/duelboard/duelboard/internal/config"
)

var contestRootPath = "/contest"

type ContestRoutesHandler struct {
	AuthSettings *config.Auth
	Controller   contestController.Controller
}

func (h *ContestRoutesHandler) RegisterRoutes(ginEngine *gin.Engine) {
	routerGroup := newGroup(contestRootPath, h.AuthSettings, ginEngine)

	routerGroup.GET("", h.current)
}

// @Summary Current contest
// @ID get-current-contest
// @Tags contest
// @Description Retrieves the contest running right now, including how far along it is
// @Accept  json
// @Produce  json
// @Success 200 {object} contest.Contest
// @Failure 404 {object} common.Body "No contest is running"
// @Router /contest [get]
func (h *ContestRoutesHandler) current(c *gin.Context) {
	if current, apiErr := h.Controller.Current(c.Request.Context()); apiErr == nil {
		c.JSON(http.StatusOK, current)
	} else {
		c.JSON(apiErr.StatusCode, apiErr.Body)
	}
}
