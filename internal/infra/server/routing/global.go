package routing

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/duelboard/duelboard/internal/api/models/common"
	"github.com/duelboard/duelboard/internal/domain/user"
)

// VoterIdHeaderKey carries the id of the user acting on the platform.
// Authentication itself happens upstream; by the time a request gets here
// the header is trusted.
var VoterIdHeaderKey = "X-DUELBOARD-VOTER-ID"

var notFoundErr = common.ApiError{
	StatusCode: http.StatusNotFound,
	Body: common.Body{
		Message: "No such route.",
	},
}

var noMethodErr = common.ApiError{
	StatusCode: http.StatusMethodNotAllowed,
	Body: common.Body{
		Message: "No such route.",
	},
}

func NoRoute(c *gin.Context) {
	c.JSON(notFoundErr.StatusCode, notFoundErr.Body)
}

func NoMethod(c *gin.Context) {
	c.JSON(notFoundErr.StatusCode, noMethodErr.Body)
}

func HandleApiErr(c *gin.Context, apiError *common.ApiError) {
	c.JSON(apiError.StatusCode, apiError.Body)
}

func HandleJsonSerdesErr(c *gin.Context, err error) {
	errResp := common.ApiError{
		StatusCode: http.StatusBadRequest,
		Body: common.Body{
			Message: err.Error(),
		},
	}
	HandleApiErr(c, &errResp)
}

var noVoterIdApiErr = common.ApiError{
	StatusCode: http.StatusBadRequest,
	Body: common.Body{
		Message: fmt.Sprintf("Voter Id header [%s] not sent", VoterIdHeaderKey),
	},
}

func getVoterIdOrErr(c *gin.Context) (*user.Id, *common.ApiError) {
	voterIdStr := strings.TrimSpace(c.Request.Header.Get(VoterIdHeaderKey))
	if len(voterIdStr) == 0 {
		return nil, &noVoterIdApiErr
	} else {
		voterId := user.Id(voterIdStr)
		return &voterId, nil
	}
}
