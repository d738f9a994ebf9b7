package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/rs/zerolog/log"

	"github.com/duelboard/duelboard/internal/config"
	"github.com/duelboard/duelboard/internal/domain/content"
	"github.com/duelboard/duelboard/internal/domain/contest"
	"github.com/duelboard/duelboard/internal/domain/metadata"
	"github.com/duelboard/duelboard/internal/domain/rating"
	"github.com/duelboard/duelboard/internal/domain/user"
	"github.com/duelboard/duelboard/internal/infra/elasticsearch/common"
)

var IndexName = common.IndexName("duelboard_content")
var VoteEventsIndexName = common.IndexName("duelboard_votes")

type EsService struct {
	client   *elasticsearch.Client
	settings config.Rankings
	getUTC   func() time.Time // for mocking
}

// For testing
func (e *EsService) SetUTCGetter(getter func() time.Time) {
	e.getUTC = getter
}

func NewService(client *elasticsearch.Client, settings config.Rankings) *EsService {
	return &EsService{client: client, settings: settings, getUTC: func() time.Time {
		return time.Now().UTC()
	}}
}

func (e *EsService) Create(ctx context.Context, newEntry *content.NewEntry) (*content.Entry, error) {
	existing, err := e.ownerHasEntryInContest(ctx, newEntry.Owner, newEntry.Contest)
	if err != nil {
		return nil, err
	}
	if existing {
		return nil, content.AlreadyExists{Owner: newEntry.Owner, Contest: newEntry.Contest}
	}

	now := e.getUTC()
	toPersist := persistedEntryData{
		UserId:    string(newEntry.Owner),
		ContestId: string(newEntry.Contest),
		Content: persistedPayload{
			Data: newEntry.Payload.Data,
			Type: string(newEntry.Payload.Type),
			Url:  newEntry.Payload.Url,
		},
		Votes:    toPersistedTally(rating.SeedTally()),
		Metadata: common.PersistedMetadata{CreatedAt: now, ModifiedAt: now},
	}
	toPersistBytes, err := json.Marshal(toPersist)
	if err != nil {
		return nil, common.JsonSerdesErr{Underlying: []error{err}}
	}

	entryId := content.GenerateId()
	createReq := esapi.CreateRequest{
		DocumentID: string(entryId),
		Index:      string(IndexName),
		Body:       bytes.NewReader(toPersistBytes),
		Refresh:    "true",
	}
	rawResp, err := createReq.Do(ctx, e.client)
	if err != nil {
		return nil, common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()
	statusCode := rawResp.StatusCode
	switch {
	case 200 <= statusCode && statusCode <= 299:
		var response common.EsCreateResponse
		if err := json.NewDecoder(rawResp.Body).Decode(&response); err != nil {
			return nil, common.JsonSerdesErr{Underlying: []error{err}}
		}
		domainEntry := toPersist.toDomainEntry(entryId, response.Version())
		return &domainEntry, nil
	default:
		return nil, common.UnexpectedEsStatusError(rawResp)
	}
}

func (e *EsService) Get(ctx context.Context, id content.Id) (*content.Entry, error) {
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
		var response esHitPersistedEntry
		if err := json.NewDecoder(rawResp.Body).Decode(&response); err != nil {
			return nil, common.JsonSerdesErr{Underlying: []error{err}}
		}
		retrieved := response.toDomainEntry()
		return &retrieved, nil
	case 404:
		return nil, content.NotFound{ID: id}
	default:
		return nil, common.UnexpectedEsStatusError(rawResp)
	}
}

func (e *EsService) ByOwner(ctx context.Context, owner user.Id) ([]content.Entry, error) {
	searchBody := jsonObjMap{
		"size":                e.settings.MaxEntries,
		"seq_no_primary_term": true,
		"query": jsonObjMap{
			"term": jsonObjMap{
				"user_id": string(owner),
			},
		},
	}
	return e.searchEntries(ctx, searchBody)
}

func (e *EsService) List(ctx context.Context) ([]content.Entry, error) {
	searchBody := jsonObjMap{
		"size":                e.settings.MaxEntries,
		"seq_no_primary_term": true,
		"sort": []jsonObjMap{
			{
				"votes.elo": jsonObjMap{
					"order": "desc",
				},
			},
		},
		"query": jsonObjMap{
			"match_all": jsonObjMap{},
		},
	}
	return e.searchEntries(ctx, searchBody)
}

func (e *EsService) Sample(ctx context.Context, excludeOwner user.Id, size uint) ([]content.Entry, error) {
	searchBody := buildSampleQueryBody(excludeOwner, size)
	return e.searchEntries(ctx, searchBody)
}

// CommitVote applies both tally updates in a single bulk request, each op
// conditional on the version its entry was read at, then records the vote
// event. ES has no cross-document transactions, so "atomic" here means:
// any version miss rolls back whatever half landed before anything becomes
// observable as a final state, and the event is only written once both
// updates are in.
func (e *EsService) CommitVote(ctx context.Context, winner content.TallyUpdate, loser content.TallyUpdate, event content.NewVoteEvent) (*content.CommittedVote, error) {
	now := e.getUTC()

	bulkRespItems, err := e.bulkUpdateTallies(ctx, []content.TallyUpdate{winner, loser}, metadata.ModifiedAt(now))
	if err != nil {
		return nil, err
	}
	winnerInfo := bulkRespItems[0].Info()
	loserInfo := bulkRespItems[1].Info()

	switch {
	case winnerInfo.IsOk() && loserInfo.IsOk():
		// fall through to the event insert below
	case winnerInfo.IsOk() && loserInfo.IsConflict():
		e.rollbackTally(ctx, &winner.Entry, winnerInfo.Version())
		return nil, content.InvalidVersion{ID: loser.Entry.ID}
	case loserInfo.IsOk() && winnerInfo.IsConflict():
		e.rollbackTally(ctx, &loser.Entry, loserInfo.Version())
		return nil, content.InvalidVersion{ID: winner.Entry.ID}
	case winnerInfo.IsConflict() && loserInfo.IsConflict():
		return nil, content.InvalidVersion{ID: winner.Entry.ID}
	default:
		// Non-conflict failure (404, 429 under pressure, ...). The other
		// half may still have landed; restore it so a reported failure
		// never leaves one tally updated.
		if winnerInfo.IsOk() {
			e.rollbackTally(ctx, &winner.Entry, winnerInfo.Version())
		}
		if loserInfo.IsOk() {
			e.rollbackTally(ctx, &loser.Entry, loserInfo.Version())
		}
		if winnerInfo.Status == 404 {
			return nil, content.NotFound{ID: winner.Entry.ID}
		}
		if loserInfo.Status == 404 {
			return nil, content.NotFound{ID: loser.Entry.ID}
		}
		return nil, common.ElasticsearchErr{
			Underlying: bulkItemStatusErr{winnerStatus: winnerInfo.Status, loserStatus: loserInfo.Status},
		}
	}

	eventId, err := e.insertVoteEvent(ctx, event, now)
	if err != nil {
		// The tallies are already in; restore both so that a reported
		// failure never leaves a half-committed vote behind.
		e.rollbackTally(ctx, &winner.Entry, winnerInfo.Version())
		e.rollbackTally(ctx, &loser.Entry, loserInfo.Version())
		return nil, err
	}

	return &content.CommittedVote{EventID: eventId, Modified: 2}, nil
}

// ownerHasEntryInContest checks the one-entry-per-user-per-contest rule
func (e *EsService) ownerHasEntryInContest(ctx context.Context, owner user.Id, contestId contest.Id) (bool, error) {
	searchBody := jsonObjMap{
		"size": 0,
		"query": jsonObjMap{
			"bool": jsonObjMap{
				"filter": []jsonObjMap{
					{"term": jsonObjMap{"user_id": string(owner)}},
					{"term": jsonObjMap{"contest_id": string(contestId)}},
				},
			},
		},
	}
	searchBodyBytes, err := json.Marshal(searchBody)
	if err != nil {
		return false, common.JsonSerdesErr{Underlying: []error{err}}
	}
	searchReq := esapi.SearchRequest{
		Index:             []string{string(IndexName)},
		IgnoreUnavailable: esapi.BoolPtr(true),
		AllowNoIndices:    esapi.BoolPtr(true),
		Body:              bytes.NewReader(searchBodyBytes),
	}
	rawResp, err := searchReq.Do(ctx, e.client)
	if err != nil {
		return false, common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()
	switch rawResp.StatusCode {
	case 200:
		var response esCountedSearchResponse
		if err := json.NewDecoder(rawResp.Body).Decode(&response); err != nil {
			return false, common.JsonSerdesErr{Underlying: []error{err}}
		}
		return response.Hits.Total.Value > 0, nil
	case 404:
		return false, nil
	default:
		return false, common.UnexpectedEsStatusError(rawResp)
	}
}

func (e *EsService) searchEntries(ctx context.Context, searchBody jsonObjMap) ([]content.Entry, error) {
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
		var searchResp esSearchResponse
		if err := json.NewDecoder(rawResp.Body).Decode(&searchResp); err != nil {
			return nil, common.JsonSerdesErr{Underlying: []error{err}}
		}
		entries := make([]content.Entry, 0, len(searchResp.Hits.Hits))
		for _, hit := range searchResp.Hits.Hits {
			entries = append(entries, hit.toDomainEntry())
		}
		return entries, nil
	case 404:
		return nil, nil
	default:
		return nil, common.UnexpectedEsStatusError(rawResp)
	}
}

func (e *EsService) bulkUpdateTallies(ctx context.Context, updates []content.TallyUpdate, at metadata.ModifiedAt) ([]common.EsBulkResponseItem, error) {
	bulkReqBody, err := buildTalliesBulkUpdateNdJsonBytes(updates, at)
	if err != nil {
		return nil, err
	}
	// rankings read straight from the index, so tally writes must be
	// searchable as soon as the vote is acked
	bulkReq := esapi.BulkRequest{
		Body:    bytes.NewReader(bulkReqBody),
		Refresh: "true",
	}
	rawResp, err := bulkReq.Do(ctx, e.client)
	if err != nil {
		return nil, common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()
	if rawResp.IsError() {
		return nil, common.UnexpectedEsStatusError(rawResp)
	}
	var response common.EsBulkResponse
	if err := json.NewDecoder(rawResp.Body).Decode(&response); err != nil {
		return nil, common.JsonSerdesErr{Underlying: []error{err}}
	}
	if len(response.Items) != len(updates) {
		return nil, content.InvalidPersistedData{PersistedData: response}
	}
	return response.Items, nil
}

// rollbackTally restores an entry to its pre-commit state, conditional on
// the version our own write produced. Best effort: if even the rollback
// conflicts, a newer writer has already built on top of our write and the
// restore must not clobber it; all we can do is log.
func (e *EsService) rollbackTally(ctx context.Context, before *content.Entry, writtenAs metadata.Version) {
	restored := *before
	restored.Metadata.Version = writtenAs
	updatePayload := toPersistedEntry(&restored)
	updatePayloadBytes, err := json.Marshal(updatePayload)
	if err != nil {
		log.Error().Err(err).Str("id", string(before.ID)).Msg("Failed to serialise tally rollback")
		return
	}
	updateReq := esapi.IndexRequest{
		Index:         string(IndexName),
		DocumentID:    string(before.ID),
		Body:          bytes.NewReader(updatePayloadBytes),
		IfPrimaryTerm: esapi.IntPtr(int(writtenAs.PrimaryTerm)),
		IfSeqNo:       esapi.IntPtr(int(writtenAs.SeqNum)),
		Refresh:       "true",
	}
	rawResp, err := updateReq.Do(ctx, e.client)
	if err != nil {
		log.Error().Err(err).Str("id", string(before.ID)).Msg("Failed to roll back tally")
		return
	}
	defer rawResp.Body.Close()
	if rawResp.IsError() {
		log.Warn().
			Str("id", string(before.ID)).
			Int("status", rawResp.StatusCode).
			Msg("Tally rollback not applied; a newer write superseded ours")
	}
}

func (e *EsService) insertVoteEvent(ctx context.Context, event content.NewVoteEvent, at time.Time) (content.VoteEventId, error) {
	toPersist := persistedVoteEvent{
		VoterId:   string(event.Voter),
		WinnerId:  string(event.Winner),
		LoserId:   string(event.Loser),
		CreatedAt: at,
	}
	toPersistBytes, err := json.Marshal(toPersist)
	if err != nil {
		return "", common.JsonSerdesErr{Underlying: []error{err}}
	}
	eventId := content.GenerateId()
	createReq := esapi.CreateRequest{
		DocumentID: string(eventId),
		Index:      string(VoteEventsIndexName),
		Body:       bytes.NewReader(toPersistBytes),
	}
	rawResp, err := createReq.Do(ctx, e.client)
	if err != nil {
		return "", common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()
	if rawResp.IsError() {
		return "", common.UnexpectedEsStatusError(rawResp)
	}
	return content.VoteEventId(eventId), nil
}

type jsonObjMap map[string]interface{}

type bulkItemStatusErr struct {
	winnerStatus uint
	loserStatus  uint
}

func (e bulkItemStatusErr) Error() string {
	return fmt.Sprintf("Unexpected statuses in bulk tally update: winner [%d], loser [%d]", e.winnerStatus, e.loserStatus)
}

func buildSampleQueryBody(excludeOwner user.Id, size uint) jsonObjMap {
	return jsonObjMap{
		"size":                size,
		"seq_no_primary_term": true,
		"query": jsonObjMap{
			"function_score": jsonObjMap{
				"query": jsonObjMap{
					"bool": jsonObjMap{
						"must_not": []jsonObjMap{
							{
								"term": jsonObjMap{
									"user_id": string(excludeOwner),
								},
							},
						},
					},
				},
				"functions": []jsonObjMap{
					{
						"random_score": jsonObjMap{},
					},
				},
				"boost_mode": "replace",
			},
		},
	}
}

func buildTalliesBulkUpdateNdJsonBytes(updates []content.TallyUpdate, at metadata.ModifiedAt) ([]byte, error) {
	var errAcc []error
	var bytesAcc []byte
	for i := range updates {
		update := &updates[i]
		updated := update.Entry
		updated.Tally = update.Tally
		updated.Metadata.ModifiedAt = at
		pair := updateEntryBulkOpPair{
			op: updateEntryBulkPairOp{
				Index: updateEntryBulkPairOpData{
					Id:            string(updated.ID),
					Index:         string(IndexName),
					IfSeqNo:       uint64(update.Entry.Metadata.Version.SeqNum),
					IfPrimaryTerm: uint64(update.Entry.Metadata.Version.PrimaryTerm),
				},
			},
			doc: toPersistedEntry(&updated),
		}
		opBytes, err := json.Marshal(pair.op)
		if err != nil {
			errAcc = append(errAcc, err)
		}
		if len(errAcc) == 0 {
			bytesAcc = append(bytesAcc, opBytes...)
			bytesAcc = append(bytesAcc, "\n"...)
		}
		docBytes, err := json.Marshal(pair.doc)
		if err != nil {
			errAcc = append(errAcc, err)
		}
		if len(errAcc) == 0 {
			bytesAcc = append(bytesAcc, docBytes...)
			bytesAcc = append(bytesAcc, "\n"...)
		}
	}
	if len(errAcc) != 0 {
		return nil, common.JsonSerdesErr{Underlying: errAcc}
	} else {
		return bytesAcc, nil
	}
}

type updateEntryBulkOpPair struct {
	op  updateEntryBulkPairOp
	doc persistedEntryData
}

type updateEntryBulkPairOp struct {
	Index updateEntryBulkPairOpData `json:"index"`
}

type updateEntryBulkPairOpData struct {
	Id            string `json:"_id"`
	Index         string `json:"_index"`
	IfSeqNo       uint64 `json:"if_seq_no"`
	IfPrimaryTerm uint64 `json:"if_primary_term"`
}

// Private persistence doc structures based entirely on basic types for ease of guaranteeing serdes.

type persistedPayload struct {
	Data string `json:"data"`
	Type string `json:"type"`
	Url  string `json:"url"`
}

type persistedTally struct {
	Total uint64  `json:"total"`
	Up    uint64  `json:"up"`
	Down  uint64  `json:"down"`
	Elo   float64 `json:"elo"`
}

type persistedEntryData struct {
	UserId    string                   `json:"user_id"`
	ContestId string                   `json:"contest_id"`
	Content   persistedPayload         `json:"content"`
	Votes     persistedTally           `json:"votes"`
	Metadata  common.PersistedMetadata `json:"metadata"`
}

type persistedVoteEvent struct {
	VoterId   string    `json:"voter_id"`
	WinnerId  string    `json:"winner_id"`
	LoserId   string    `json:"loser_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toPersistedTally(tally content.Tally) persistedTally {
	return persistedTally{
		Total: uint64(tally.Total),
		Up:    uint64(tally.Wins),
		Down:  uint64(tally.Losses),
		Elo:   float64(tally.Rating),
	}
}

func toPersistedEntry(entry *content.Entry) persistedEntryData {
	return persistedEntryData{
		UserId:    string(entry.Owner),
		ContestId: string(entry.Contest),
		Content: persistedPayload{
			Data: entry.Payload.Data,
			Type: string(entry.Payload.Type),
			Url:  entry.Payload.Url,
		},
		Votes: toPersistedTally(entry.Tally),
		Metadata: common.PersistedMetadata{
			CreatedAt:  time.Time(entry.Metadata.CreatedAt),
			ModifiedAt: time.Time(entry.Metadata.ModifiedAt),
		},
	}
}

func (pEntry *persistedEntryData) toDomainEntry(id content.Id, version metadata.Version) content.Entry {
	return content.Entry{
		ID:      id,
		Owner:   user.Id(pEntry.UserId),
		Contest: contest.Id(pEntry.ContestId),
		Payload: content.Payload{
			Data: pEntry.Content.Data,
			Type: content.PayloadType(pEntry.Content.Type),
			Url:  pEntry.Content.Url,
		},
		Tally: content.Tally{
			Total:  content.Count(pEntry.Votes.Total),
			Wins:   content.Count(pEntry.Votes.Up),
			Losses: content.Count(pEntry.Votes.Down),
			Rating: content.Rating(pEntry.Votes.Elo),
		},
		Metadata: metadata.Metadata{
			CreatedAt:  metadata.CreatedAt(pEntry.Metadata.CreatedAt),
			ModifiedAt: metadata.ModifiedAt(pEntry.Metadata.ModifiedAt),
			Version:    version,
		},
	}
}

type esHitPersistedEntry struct {
	ID          string             `json:"_id"`
	Index       string             `json:"_index"`
	SeqNum      uint64             `json:"_seq_no"`
	PrimaryTerm uint64             `json:"_primary_term"`
	Source      persistedEntryData `json:"_source"`
}

func (resp *esHitPersistedEntry) toDomainEntry() content.Entry {
	return resp.Source.toDomainEntry(content.Id(resp.ID), metadata.Version{
		SeqNum:      metadata.SeqNum(resp.SeqNum),
		PrimaryTerm: metadata.PrimaryTerm(resp.PrimaryTerm),
	})
}

type esSearchResponse struct {
	Hits struct {
		Hits []esHitPersistedEntry `json:"hits"`
	} `json:"hits"`
}

type esCountedSearchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
	} `json:"hits"`
}
