package routing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	voteController "github.com/duelboard/duelboard/internal/api/controllers/vote"
	apiVote "github.com/duelboard/duelboard/internal/api/models/vote"
	"github.com/duelboard/duelboard/internal/config"
)

var votesRootPath = "/votes"

type VotesRoutesHandler struct {
	AuthSettings *config.Auth
	Controller   voteController.Controller
}

func (h *VotesRoutesHandler) RegisterRoutes(ginEngine *gin.Engine) {
	routerGroup := newGroup(votesRootPath, h.AuthSettings, ginEngine)

	routerGroup.POST("", h.submit)
}

// @Summary Submit a vote
// @ID submit-vote
// @Tags votes
// @Description Applies one pairwise outcome: the winner's rating goes up, the loser's goes down, and the vote is recorded
// @Accept  json
// @Produce  json
// @Param X-DUELBOARD-VOTER-ID header string true "Acting user Id"
// @Param   newVote body vote.NewVote true "The request body"
// @Success 200 {object} vote.Receipt
// @Failure 400 {object} common.Body "Invalid JSON, malformed ids, or winner and loser are the same entry"
// @Failure 403 {object} common.Body "Voter owns one of the entries"
// @Failure 404 {object} common.Body "Voter or entry does not exist"
// @Failure 409 {object} common.Body "The vote kept losing against concurrent votes; try again"
// @Router /votes [post]
func (h *VotesRoutesHandler) submit(c *gin.Context) {
	if voterId, apiErr := getVoterIdOrErr(c); apiErr != nil {
		HandleApiErr(c, apiErr)
	} else {
		var newVote apiVote.NewVote
		if err := c.ShouldBindJSON(&newVote); err != nil {
			HandleJsonSerdesErr(c, err)
		} else {
			if receipt, apiErr := h.Controller.Submit(c.Request.Context(), *voterId, &newVote); apiErr == nil {
				c.JSON(http.StatusOK, receipt)
			} else {
				c.JSON(apiErr.StatusCode, apiErr.Body)
			}
		}
	}
}
