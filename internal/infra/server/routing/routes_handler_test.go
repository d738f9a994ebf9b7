package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/duelboard/duelboard/internal/api/models/common"
	apiContent "github.com/duelboard/duelboard/internal/api/models/content"
	apiContest "github.com/duelboard/duelboard/internal/api/models/contest"
	apiRanking "github.com/duelboard/duelboard/internal/api/models/ranking"
	apiVote "github.com/duelboard/duelboard/internal/api/models/vote"
	"github.com/duelboard/duelboard/internal/config"
	domainContent "github.com/duelboard/duelboard/internal/domain/content"
	domainUser "github.com/duelboard/duelboard/internal/domain/user"
)

var mockEntryId = "b13faab6d47a459cae41f7b0110ac4a9"
var otherEntryId = "41f7b0110ac4a9b13faab6d47a459cae"

var authSettings = config.Auth{
	BasicAuth: []config.BasicAuthUser{
		{Name: "admin", Password: "hunter2"},
	},
}

func voterHeaders() http.Header {
	h := http.Header{}
	h.Set(VoterIdHeaderKey, "voter-1")
	return h
}

func performRequest(r http.Handler, method, url string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	var bodyToSend io.Reader
	if body != nil {
		asBytes, _ := json.Marshal(body)
		bodyToSend = bytes.NewBuffer(asBytes)
	}
	req, _ := http.NewRequest(method, url, bodyToSend)
	if header != nil {
		req.Header = header
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// <-- mock controllers

type mockVotesController struct {
	submitCalled   uint
	submitOverride func() (*apiVote.Receipt, *common.ApiError)
}

func (m *mockVotesController) Submit(ctx context.Context, voterId domainUser.Id, newVote *apiVote.NewVote) (*apiVote.Receipt, *common.ApiError) {
	m.submitCalled++
	if m.submitOverride != nil {
		return m.submitOverride()
	}
	return &apiVote.Receipt{Modified: 2, VoteID: "evt-1"}, nil
}

type mockContentsController struct {
	createCalled  uint
	getCalled     uint
	listCalled    uint
	byOwnerCalled uint
}

func (m *mockContentsController) Create(ctx context.Context, owner domainUser.Id, newEntry *apiContent.NewEntry) (*apiContent.Entry, *common.ApiError) {
	m.createCalled++
	return &apiContent.Entry{ID: mockEntryId, Owner: string(owner), Data: newEntry.Data}, nil
}

func (m *mockContentsController) Get(ctx context.Context, id domainContent.Id) (*apiContent.Entry, *common.ApiError) {
	m.getCalled++
	return &apiContent.Entry{ID: string(id)}, nil
}

func (m *mockContentsController) List(ctx context.Context) ([]apiContent.Entry, *common.ApiError) {
	m.listCalled++
	return []apiContent.Entry{{ID: mockEntryId}, {ID: otherEntryId}}, nil
}

func (m *mockContentsController) ByOwner(ctx context.Context, owner domainUser.Id) ([]apiContent.Entry, *common.ApiError) {
	m.byOwnerCalled++
	return []apiContent.Entry{{ID: mockEntryId, Owner: string(owner)}}, nil
}

type mockRankingsController struct {
	byRatingCalled   uint
	byApprovalCalled uint
}

func (m *mockRankingsController) ByRating(ctx context.Context) ([]apiRanking.RatingRanked, *common.ApiError) {
	m.byRatingCalled++
	return []apiRanking.RatingRanked{{Position: 1, Entry: apiContent.Entry{ID: mockEntryId}}}, nil
}

func (m *mockRankingsController) ByApproval(ctx context.Context) ([]apiRanking.ApprovalRanked, *common.ApiError) {
	m.byApprovalCalled++
	return []apiRanking.ApprovalRanked{{ApprovalRatio: 0.75, Entry: apiContent.Entry{ID: mockEntryId}}}, nil
}

type mockStackController struct {
	pairCalled uint
}

func (m *mockStackController) Pair(ctx context.Context, voterId domainUser.Id) ([]apiContent.Entry, *common.ApiError) {
	m.pairCalled++
	return []apiContent.Entry{{ID: mockEntryId}, {ID: otherEntryId}}, nil
}

type mockContestsController struct {
	currentCalled uint
}

func (m *mockContestsController) Current(ctx context.Context) (*apiContest.Contest, *common.ApiError) {
	m.currentCalled++
	return &apiContest.Contest{ID: "summer-2020", Progress: 0.42}, nil
}

//     mock controllers -->

func setupVotesRouter() (*gin.Engine, *mockVotesController) {
	engine := gin.Default()
	mockController := mockVotesController{}
	handler := VotesRoutesHandler{Controller: &mockController}
	handler.RegisterRoutes(engine)
	return engine, &mockController
}

func TestVoteSubmit_Ok(t *testing.T) {
	router, mockController := setupVotesRouter()
	newVote := apiVote.NewVote{Win: mockEntryId, Los: otherEntryId}
	resp := performRequest(router, http.MethodPost, "/votes", newVote, voterHeaders())
	assert.EqualValues(t, http.StatusOK, resp.Code)
	assert.EqualValues(t, 1, mockController.submitCalled)
	var receipt apiVote.Receipt
	if err := json.Unmarshal(resp.Body.Bytes(), &receipt); err != nil {
		t.Error(err)
	} else {
		assert.EqualValues(t, 2, receipt.Modified)
		assert.EqualValues(t, "evt-1", receipt.VoteID)
	}
}

func TestVoteSubmit_NoVoterHeader(t *testing.T) {
	router, mockController := setupVotesRouter()
	newVote := apiVote.NewVote{Win: mockEntryId, Los: otherEntryId}
	resp := performRequest(router, http.MethodPost, "/votes", newVote, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.EqualValues(t, 0, mockController.submitCalled)
}

func TestVoteSubmit_MissingField(t *testing.T) {
	router, mockController := setupVotesRouter()
	resp := performRequest(router, http.MethodPost, "/votes", map[string]string{"win": mockEntryId}, voterHeaders())
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.EqualValues(t, 0, mockController.submitCalled)
}

func TestVoteSubmit_ControllerErr(t *testing.T) {
	router, mockController := setupVotesRouter()
	mockController.submitOverride = func() (*apiVote.Receipt, *common.ApiError) {
		return nil, &common.ApiError{StatusCode: http.StatusConflict, Body: common.Body{Message: "try again"}}
	}
	newVote := apiVote.NewVote{Win: mockEntryId, Los: otherEntryId}
	resp := performRequest(router, http.MethodPost, "/votes", newVote, voterHeaders())
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func setupContentRouter() (*gin.Engine, *mockContentsController) {
	engine := gin.Default()
	mockController := mockContentsController{}
	handler := ContentRoutesHandler{Controller: &mockController}
	handler.RegisterRoutes(engine)
	return engine, &mockController
}

func TestContentCreate_Ok(t *testing.T) {
	router, mockController := setupContentRouter()
	newEntry := apiContent.NewEntry{Data: "a joke"}
	resp := performRequest(router, http.MethodPost, "/content", newEntry, voterHeaders())
	assert.EqualValues(t, http.StatusCreated, resp.Code)
	assert.EqualValues(t, 1, mockController.createCalled)
	var entry apiContent.Entry
	if err := json.Unmarshal(resp.Body.Bytes(), &entry); err != nil {
		t.Error(err)
	} else {
		assert.EqualValues(t, "voter-1", entry.Owner)
		assert.EqualValues(t, "a joke", entry.Data)
	}
}

func TestContentCreate_NoVoterHeader(t *testing.T) {
	router, mockController := setupContentRouter()
	newEntry := apiContent.NewEntry{Data: "a joke"}
	resp := performRequest(router, http.MethodPost, "/content", newEntry, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.EqualValues(t, 0, mockController.createCalled)
}

func TestContentCreate_MissingData(t *testing.T) {
	router, mockController := setupContentRouter()
	resp := performRequest(router, http.MethodPost, "/content", map[string]string{}, voterHeaders())
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.EqualValues(t, 0, mockController.createCalled)
}

func TestContentGet_Ok(t *testing.T) {
	router, mockController := setupContentRouter()
	resp := performRequest(router, http.MethodGet, "/content/"+mockEntryId, nil, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.EqualValues(t, 1, mockController.getCalled)
}

func TestContentGet_MalformedId(t *testing.T) {
	router, mockController := setupContentRouter()
	resp := performRequest(router, http.MethodGet, "/content/not-an-id", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.EqualValues(t, 0, mockController.getCalled)
}

func TestContentList_Ok(t *testing.T) {
	router, mockController := setupContentRouter()
	resp := performRequest(router, http.MethodGet, "/content", nil, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.EqualValues(t, 1, mockController.listCalled)
	var entries []apiContent.Entry
	if err := json.Unmarshal(resp.Body.Bytes(), &entries); err != nil {
		t.Error(err)
	} else {
		assert.Len(t, entries, 2)
	}
}

func TestContentMine_Ok(t *testing.T) {
	router, mockController := setupContentRouter()
	resp := performRequest(router, http.MethodGet, "/content/mine", nil, voterHeaders())
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.EqualValues(t, 1, mockController.byOwnerCalled)
}

func TestRankings(t *testing.T) {
	engine := gin.Default()
	mockController := mockRankingsController{}
	handler := RankingsRoutesHandler{Controller: &mockController}
	handler.RegisterRoutes(engine)

	resp := performRequest(engine, http.MethodGet, "/rankings/rating", nil, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.EqualValues(t, 1, mockController.byRatingCalled)

	resp = performRequest(engine, http.MethodGet, "/rankings/approval", nil, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.EqualValues(t, 1, mockController.byApprovalCalled)
}

func TestStack_Ok(t *testing.T) {
	engine := gin.Default()
	mockController := mockStackController{}
	handler := StackRoutesHandler{Controller: &mockController}
	handler.RegisterRoutes(engine)

	resp := performRequest(engine, http.MethodGet, "/stack", nil, voterHeaders())
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.EqualValues(t, 1, mockController.pairCalled)
	var pair []apiContent.Entry
	if err := json.Unmarshal(resp.Body.Bytes(), &pair); err != nil {
		t.Error(err)
	} else {
		assert.Len(t, pair, 2)
	}
}

func TestStack_NoVoterHeader(t *testing.T) {
	engine := gin.Default()
	mockController := mockStackController{}
	handler := StackRoutesHandler{Controller: &mockController}
	handler.RegisterRoutes(engine)

	resp := performRequest(engine, http.MethodGet, "/stack", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.EqualValues(t, 0, mockController.pairCalled)
}

func TestContest_Ok(t *testing.T) {
	engine := gin.Default()
	mockController := mockContestsController{}
	handler := ContestRoutesHandler{Controller: &mockController}
	handler.RegisterRoutes(engine)

	resp := performRequest(engine, http.MethodGet, "/contest", nil, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.EqualValues(t, 1, mockController.currentCalled)
}

func TestBasicAuth(t *testing.T) {
	engine := gin.Default()
	mockController := mockContestsController{}
	handler := ContestRoutesHandler{
		AuthSettings: &authSettings,
		Controller:   &mockController,
	}
	handler.RegisterRoutes(engine)

	resp := performRequest(engine, http.MethodGet, "/contest", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.EqualValues(t, 0, mockController.currentCalled)

	req, _ := http.NewRequest(http.MethodGet, "/contest", nil)
	req.SetBasicAuth("admin", "hunter2")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, mockController.currentCalled)
}
