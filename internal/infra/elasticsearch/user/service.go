package user

import (
	"context"
	"encoding/json"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/duelboard/duelboard/internal/domain/metadata"
	"github.com/duelboard/duelboard/internal/domain/user"
	"github.com/duelboard/duelboard/internal/infra/elasticsearch/common"
)

var IndexName = common.IndexName("duelboard_users")

// EsService is the read side of the users index. Account creation is out of
// scope here; documents land in the index through whatever provisions them.
type EsService struct {
	client *elasticsearch.Client
}

func NewService(client *elasticsearch.Client) *EsService {
	return &EsService{client: client}
}

func (e *EsService) Get(ctx context.Context, id user.Id) (*user.User, error) {
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
		var response esHitPersistedUser
		if err := json.NewDecoder(rawResp.Body).Decode(&response); err != nil {
			return nil, common.JsonSerdesErr{Underlying: []error{err}}
		}
		retrieved := response.toDomainUser()
		return &retrieved, nil
	case 404:
		return nil, user.NotFound{ID: id}
	default:
		return nil, common.UnexpectedEsStatusError(rawResp)
	}
}

type persistedUserData struct {
	Name     string                   `json:"name"`
	Email    string                   `json:"email"`
	About    string                   `json:"about"`
	Metadata common.PersistedMetadata `json:"metadata"`
}

type esHitPersistedUser struct {
	ID     string            `json:"_id"`
	Source persistedUserData `json:"_source"`
}

func (resp *esHitPersistedUser) toDomainUser() user.User {
	return user.User{
		ID:    user.Id(resp.ID),
		Name:  user.Name(resp.Source.Name),
		Email: resp.Source.Email,
		About: resp.Source.About,
		Metadata: metadata.Metadata{
			CreatedAt:  metadata.CreatedAt(resp.Source.Metadata.CreatedAt),
			ModifiedAt: metadata.ModifiedAt(resp.Source.Metadata.ModifiedAt),
		},
	}
}
