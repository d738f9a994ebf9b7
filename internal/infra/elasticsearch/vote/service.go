package vote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/rs/zerolog/log"

	"github.com/duelboard/duelboard/internal/infra/elasticsearch/common"
)

var IndexName = common.IndexName("duelboard_votes")
var ArchiveIndexName = common.IndexName("duelboard_votes_archive")

// EsArchiver scrolls through old vote events and moves them, batch by batch,
// into the archive index. Each batch is one bulk request holding a create
// into the archive and a delete from the live index per event; creates are
// idempotent on event id, so a crashed run can simply be re-run.
type EsArchiver struct {
	client *elasticsearch.Client
}

func NewArchiver(client *elasticsearch.Client) *EsArchiver {
	return &EsArchiver{client: client}
}

func (e *EsArchiver) ArchiveOldEvents(ctx context.Context, createdBefore time.Time, scrollSize uint, scrollTtl time.Duration) error {
	searchBody := jsonObjMap{
		"query": jsonObjMap{
			"range": jsonObjMap{
				"created_at": jsonObjMap{
					"lt": createdBefore.UTC().Format(time.RFC3339Nano),
				},
			},
		},
	}
	searchBodyBytes, err := json.Marshal(searchBody)
	if err != nil {
		return common.JsonSerdesErr{Underlying: []error{err}}
	}
	searchReq := esapi.SearchRequest{
		Index:             []string{string(IndexName)},
		IgnoreUnavailable: esapi.BoolPtr(true),
		AllowNoIndices:    esapi.BoolPtr(true),
		Scroll:            scrollTtl,
		Size:              esapi.IntPtr(int(scrollSize)),
		Body:              bytes.NewReader(searchBodyBytes),
	}
	rawResp, err := searchReq.Do(ctx, e.client)
	if err != nil {
		return common.ElasticsearchErr{Underlying: err}
	}
	scrollPage, err := decodeScrollPage(rawResp)
	if err != nil {
		return err
	}

	scrollIds := make(map[string]bool)
	defer e.clearScrolls(ctx, scrollIds)

	archived := uint(0)
	for len(scrollPage.Hits.Hits) > 0 {
		scrollIds[scrollPage.ScrollId] = true
		if err := e.archiveBatch(ctx, scrollPage.Hits.Hits); err != nil {
			return err
		}
		archived += uint(len(scrollPage.Hits.Hits))

		scrollReq := esapi.ScrollRequest{
			ScrollID: scrollPage.ScrollId,
			Scroll:   scrollTtl,
		}
		rawResp, err := scrollReq.Do(ctx, e.client)
		if err != nil {
			return common.ElasticsearchErr{Underlying: err}
		}
		scrollPage, err = decodeScrollPage(rawResp)
		if err != nil {
			return err
		}
	}
	if archived > 0 {
		log.Info().
			Uint("events", archived).
			Time("created_before", createdBefore).
			Msg("Archived old vote events")
	}
	return nil
}

func (e *EsArchiver) archiveBatch(ctx context.Context, hits []esVoteEventHit) error {
	var errAcc []error
	var bytesAcc []byte
	appendLine := func(v interface{}) {
		lineBytes, err := json.Marshal(v)
		if err != nil {
			errAcc = append(errAcc, err)
			return
		}
		bytesAcc = append(bytesAcc, lineBytes...)
		bytesAcc = append(bytesAcc, "\n"...)
	}
	for _, hit := range hits {
		appendLine(jsonObjMap{
			"create": jsonObjMap{
				"_id":    hit.ID,
				"_index": string(ArchiveIndexName),
			},
		})
		appendLine(hit.Source)
		appendLine(jsonObjMap{
			"delete": jsonObjMap{
				"_id":    hit.ID,
				"_index": string(IndexName),
			},
		})
	}
	if len(errAcc) != 0 {
		return common.JsonSerdesErr{Underlying: errAcc}
	}

	bulkReq := esapi.BulkRequest{
		Body: bytes.NewReader(bytesAcc),
	}
	rawResp, err := bulkReq.Do(ctx, e.client)
	if err != nil {
		return common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()
	if rawResp.IsError() {
		return common.UnexpectedEsStatusError(rawResp)
	}
	var response common.EsBulkResponse
	if err := json.NewDecoder(rawResp.Body).Decode(&response); err != nil {
		return common.JsonSerdesErr{Underlying: []error{err}}
	}
	for _, item := range response.Items {
		info := item.Info()
		// 409 on the archive create just means an earlier run already
		// copied the event over; the delete will still go through.
		if !info.IsOk() && !info.IsConflict() {
			return common.ElasticsearchErr{
				Underlying: unexpectedBulkItemErr{id: info.ID, status: info.Status},
			}
		}
	}
	return nil
}

func (e *EsArchiver) clearScrolls(ctx context.Context, scrollIds map[string]bool) {
	if len(scrollIds) == 0 {
		return
	}
	ids := make([]string, 0, len(scrollIds))
	for id := range scrollIds {
		ids = append(ids, id)
	}
	clearReq := esapi.ClearScrollRequest{
		ScrollID: ids,
	}
	rawResp, err := clearReq.Do(ctx, e.client)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to clear archiving scroll contexts")
		return
	}
	defer rawResp.Body.Close()
}

func decodeScrollPage(rawResp *esapi.Response) (*esVoteEventScrollResponse, error) {
	defer rawResp.Body.Close()
	if rawResp.IsError() {
		return nil, common.UnexpectedEsStatusError(rawResp)
	}
	var page esVoteEventScrollResponse
	if err := json.NewDecoder(rawResp.Body).Decode(&page); err != nil {
		return nil, common.JsonSerdesErr{Underlying: []error{err}}
	}
	return &page, nil
}

type jsonObjMap map[string]interface{}

type unexpectedBulkItemErr struct {
	id     string
	status uint
}

func (e unexpectedBulkItemErr) Error() string {
	return fmt.Sprintf("Unexpected status [%d] archiving vote event [%s]", e.status, e.id)
}

type esVoteEventHit struct {
	ID     string          `json:"_id"`
	Source json.RawMessage `json:"_source"`
}

type esVoteEventScrollResponse struct {
	ScrollId string `json:"_scroll_id"`
	Hits     struct {
		Hits []esVoteEventHit `json:"hits"`
	} `json:"hits"`
}
