package routing

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	contentController "github.com/duelboard/duelboard/internal/api/controllers/content"
	"github.com/duelboard/duelboard/internal/api/models/common"
	apiContent "github.com/duelboard/duelboard/internal/api/models/content"
	"github.com/duelboard/duelboard/internal/config"
	domainContent "github.com/duelboard/duelboard/internal/domain/content"
)

var contentRootPath = "/content"
var contentIdPathKey = "content_id"

type ContentRoutesHandler struct {
	AuthSettings *config.Auth
	Controller   contentController.Controller
}

func (h *ContentRoutesHandler) RegisterRoutes(ginEngine *gin.Engine) {
	routerGroup := newGroup(contentRootPath, h.AuthSettings, ginEngine)

	routerGroup.POST("", h.create)
	routerGroup.GET("", h.list)
	// gin's route tree can't hold a static "/mine" next to the id wildcard,
	// so the wildcard handler dispatches; ids are 32 hex chars and can never
	// collide with the literal
	routerGroup.GET("/:"+contentIdPathKey, h.getOrMine)
}

const mineAlias = "mine"

func (h *ContentRoutesHandler) getOrMine(c *gin.Context) {
	if c.Param(contentIdPathKey) == mineAlias {
		h.mine(c)
	} else {
		h.get(c)
	}
}

// @Summary Submit content
// @ID create-content
// @Tags content
// @Description Submits a new content entry into the currently running contest
// @Accept  json
// @Produce  json
// @Param X-DUELBOARD-VOTER-ID header string true "Acting user Id"
// @Param   newEntry body content.NewEntry true "The request body"
// @Success 201 {object} content.Entry
// @Failure 400 {object} common.Body "Invalid JSON"
// @Failure 409 {object} common.Body "The user already has an entry in this contest, or no contest is running"
// @Router /content [post]
func (h *ContentRoutesHandler) create(c *gin.Context) {
	if owner, apiErr := getVoterIdOrErr(c); apiErr != nil {
		HandleApiErr(c, apiErr)
	} else {
		var newEntry apiContent.NewEntry
		if err := c.ShouldBindJSON(&newEntry); err != nil {
			HandleJsonSerdesErr(c, err)
		} else {
			if entry, apiErr := h.Controller.Create(c.Request.Context(), *owner, &newEntry); apiErr == nil {
				c.JSON(http.StatusCreated, entry)
			} else {
				c.JSON(apiErr.StatusCode, apiErr.Body)
			}
		}
	}
}

// @Summary List all entries
// @ID list-content
// @Tags content
// @Description Retrieves every entry with its current tally, ordered by rating, highest first
// @Accept  json
// @Produce  json
// @Success 200 {array} content.Entry
// @Router /content [get]
func (h *ContentRoutesHandler) list(c *gin.Context) {
	if entries, apiErr := h.Controller.List(c.Request.Context()); apiErr == nil {
		c.JSON(http.StatusOK, entries)
	} else {
		c.JSON(apiErr.StatusCode, apiErr.Body)
	}
}

// @Summary Get a content entry
// @ID get-content
// @Tags content
// @Description Retrieves a single content entry with its current tally
// @Accept  json
// @Produce  json
// @Param   content_id path string true "The id of the entry"
// @Success 200 {object} content.Entry
// @Failure 404 {object} common.Body "Entry does not exist"
// @Router /content/{content_id} [get]
func (h *ContentRoutesHandler) get(c *gin.Context) {
	contentId, err := domainContent.IdFromString(c.Param(contentIdPathKey))
	if err != nil {
		badContentId(c, err)
	} else {
		if entry, apiErr := h.Controller.Get(c.Request.Context(), *contentId); apiErr == nil {
			c.JSON(http.StatusOK, entry)
		} else {
			c.JSON(apiErr.StatusCode, apiErr.Body)
		}
	}
}

// @Summary List own entries
// @ID get-own-content
// @Tags content
// @Description Retrieves all entries submitted by the acting user
// @Accept  json
// @Produce  json
// @Param X-DUELBOARD-VOTER-ID header string true "Acting user Id"
// @Success 200 {array} content.Entry
// @Failure 404 {object} common.Body "User does not exist"
// @Router /content/mine [get]
func (h *ContentRoutesHandler) mine(c *gin.Context) {
	if owner, apiErr := getVoterIdOrErr(c); apiErr != nil {
		HandleApiErr(c, apiErr)
	} else {
		if entries, apiErr := h.Controller.ByOwner(c.Request.Context(), *owner); apiErr == nil {
			c.JSON(http.StatusOK, entries)
		} else {
			c.JSON(apiErr.StatusCode, apiErr.Body)
		}
	}
}

func newGroup(rootPath string, auth *config.Auth, ginEngine *gin.Engine) *gin.RouterGroup {
	accounts := make(gin.Accounts)
	if auth != nil {
		for _, bAuthUser := range auth.BasicAuth {
			accounts[bAuthUser.Name] = bAuthUser.Password
		}
	}

	if len(accounts) > 0 {
		return ginEngine.Group(rootPath, gin.BasicAuth(accounts))
	} else {
		return ginEngine.Group(rootPath)
	}
}

func badContentId(c *gin.Context, err error) {
	errResp := common.ApiError{
		StatusCode: http.StatusBadRequest,
		Body: common.Body{
			Message: strings.TrimSpace(err.Error()),
		},
	}
	HandleApiErr(c, &errResp)
}
