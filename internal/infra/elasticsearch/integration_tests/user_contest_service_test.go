// +build integration

package integration_tests

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duelboard/duelboard/internal/domain/contest"
	"github.com/duelboard/duelboard/internal/domain/user"
	esContest "github.com/duelboard/duelboard/internal/infra/elasticsearch/contest"
	esUser "github.com/duelboard/duelboard/internal/infra/elasticsearch/user"
)

type jsonObj = map[string]interface{}

// users and contests are written by whatever provisions accounts and
// contests; tests seed them straight into the indices
func seedDoc(t *testing.T, index string, id string, doc jsonObj) {
	asBytes, err := json.Marshal(doc)
	require.NoError(t, err)
	req := esapi.IndexRequest{
		Index:      index,
		DocumentID: id,
		Body:       bytes.NewReader(asBytes),
		Refresh:    "true",
	}
	rawResp, err := req.Do(ctx, esClient)
	require.NoError(t, err)
	defer rawResp.Body.Close()
	require.False(t, rawResp.IsError())
}

func Test_esUserService_Get(t *testing.T) {
	seedDoc(t, string(esUser.IndexName), "user-abc", jsonObj{
		"name":  "alice",
		"email": "alice@example.com",
		"about": "hi",
	})

	service := esUser.NewService(esClient)

	retrieved, err := service.Get(ctx, "user-abc")
	require.NoError(t, err)
	assert.EqualValues(t, "user-abc", retrieved.ID)
	assert.EqualValues(t, "alice", retrieved.Name)
	assert.EqualValues(t, "alice@example.com", retrieved.Email)

	_, err = service.Get(ctx, "no-such-user")
	assert.IsType(t, user.NotFound{}, err)
}

func Test_esContestService(t *testing.T) {
	start := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC)
	seedDoc(t, string(esContest.IndexName), "summer-2020", jsonObj{
		"title":   "Summer 2020",
		"start":   start.Format(time.RFC3339),
		"end":     end.Format(time.RFC3339),
		"current": true,
	})
	seedDoc(t, string(esContest.IndexName), "spring-2020", jsonObj{
		"title":   "Spring 2020",
		"start":   start.AddDate(0, -3, 0).Format(time.RFC3339),
		"end":     end.AddDate(0, -3, 0).Format(time.RFC3339),
		"current": false,
	})

	service := esContest.NewService(esClient)

	retrieved, err := service.Get(ctx, "spring-2020")
	require.NoError(t, err)
	assert.EqualValues(t, "Spring 2020", retrieved.Title)
	assert.False(t, retrieved.Current)

	current, err := service.Current(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, "summer-2020", current.ID)
	assert.True(t, current.Current)

	_, err = service.Get(ctx, "winter-1999")
	assert.IsType(t, contest.NotFound{}, err)
}
