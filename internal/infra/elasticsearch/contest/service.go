package contest

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/duelboard/duelboard/internal/domain/contest"
	"github.com/duelboard/duelboard/internal/domain/metadata"
	"github.com/duelboard/duelboard/internal/infra/elasticsearch/common"
)

var IndexName = common.IndexName("duelboard_contests")

type EsService struct {
	client *elasticsearch.Client
}

func NewService(client *elasticsearch.Client) *EsService {
	return &EsService{client: client}
}

func (e *EsService) Get(ctx context.Context, id contest.Id) (*contest.Contest, error) {
	getReq := esapi.GetRequest{
		Index:      string(IndexName),
		DocumentID: string(id),
	}
	rawResp, err := getReq.Do(ctx, e.client)
	if err != nil {
		return nil, common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()

	switch rawResp.StatusCode {
	case 200:
		var response esHitPersistedContest
		if err := json.NewDecoder(rawResp.Body).Decode(&response); err != nil {
			return nil, common.JsonSerdesErr{Underlying: []error{err}}
		}
		retrieved := response.toDomainContest()
		return &retrieved, nil
	case 404:
		return nil, contest.NotFound{ID: id}
	default:
		return nil, common.UnexpectedEsStatusError(rawResp)
	}
}

func (e *EsService) Current(ctx context.Context) (*contest.Contest, error) {
	searchBody := jsonObjMap{
		"size": 1,
		"query": jsonObjMap{
			"term": jsonObjMap{
				"current": true,
			},
		},
	}
	searchBodyBytes, err := json.Marshal(searchBody)
	if err != nil {
		return nil, common.JsonSerdesErr{Underlying: []error{err}}
	}
	searchReq := esapi.SearchRequest{
		Index:             []string{string(IndexName)},
		IgnoreUnavailable: esapi.BoolPtr(true),
		AllowNoIndices:    esapi.BoolPtr(true),
		Body:              bytes.NewReader(searchBodyBytes),
	}
	rawResp, err := searchReq.Do(ctx, e.client)
	if err != nil {
		return nil, common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()

	switch rawResp.StatusCode {
	case 200:
		var searchResp esContestSearchResponse
		if err := json.NewDecoder(rawResp.Body).Decode(&searchResp); err != nil {
			return nil, common.JsonSerdesErr{Underlying: []error{err}}
		}
		if len(searchResp.Hits.Hits) == 0 {
			return nil, contest.NoCurrentContest{}
		}
		retrieved := searchResp.Hits.Hits[0].toDomainContest()
		return &retrieved, nil
	case 404:
		return nil, contest.NoCurrentContest{}
	default:
		return nil, common.UnexpectedEsStatusError(rawResp)
	}
}

type jsonObjMap map[string]interface{}

type persistedContestData struct {
	Title    string                   `json:"title"`
	Start    time.Time                `json:"start"`
	End      time.Time                `json:"end"`
	Current  bool                     `json:"current"`
	Metadata common.PersistedMetadata `json:"metadata"`
}

type esHitPersistedContest struct {
	ID     string               `json:"_id"`
	Source persistedContestData `json:"_source"`
}

func (resp *esHitPersistedContest) toDomainContest() contest.Contest {
	return contest.Contest{
		ID:      contest.Id(resp.ID),
		Title:   contest.Title(resp.Source.Title),
		Start:   resp.Source.Start,
		End:     resp.Source.End,
		Current: resp.Source.Current,
		Metadata: metadata.Metadata{
			CreatedAt:  metadata.CreatedAt(resp.Source.Metadata.CreatedAt),
			ModifiedAt: metadata.ModifiedAt(resp.Source.Metadata.ModifiedAt),
		},
	}
}

type esContestSearchResponse struct {
	Hits struct {
		Hits []esHitPersistedContest `json:"hits"`
	} `json:"hits"`
}
