package content

import (
	"github.com/duelboard/duelboard/internal/api/models/common"
	"github.com/duelboard/duelboard/internal/domain/content"
	"github.com/duelboard/duelboard/internal/domain/contest"
	"github.com/duelboard/duelboard/internal/domain/user"
)

// NewEntry is a content submission as it comes over the wire. The owner
// comes from the authenticated caller and the contest from whichever one is
// current, so neither is accepted in the body.
type NewEntry struct {
	Data string `json:"data" binding:"required" example:"An unusually sharp one-liner"`
	Type string `json:"type,omitempty" example:"text"`
	Url  string `json:"url,omitempty" example:""`
}

// ToDomainNewEntry converts the API model to the domain model, filling in
// the resolved owner and contest
func (e *NewEntry) ToDomainNewEntry(owner user.Id, contestId contest.Id) content.NewEntry {
	payloadType := content.PayloadType(e.Type)
	if payloadType == "" {
		payloadType = content.TextPayload
	}
	return content.NewEntry{
		Owner:   owner,
		Contest: contestId,
		Payload: content.Payload{
			Data: e.Data,
			Type: payloadType,
			Url:  e.Url,
		},
	}
}

// Tally is the voting state of an Entry as rendered in the API
type Tally struct {
	Total  uint64  `json:"total" example:"12"`
	Up     uint64  `json:"up" example:"7"`
	Down   uint64  `json:"down" example:"5"`
	Rating float64 `json:"elo" example:"1520"`
}

// Entry is a content entry as rendered in the API
type Entry struct {
	ID       string          `json:"id" example:"b13faab6d47a459cae41f7b0110ac4a9"`
	Owner    string          `json:"user_id" example:"5e4bb8cfa1d0f3b1f8a21f2e"`
	Contest  string          `json:"contest_id" example:"summer-2020"`
	Data     string          `json:"data"`
	Type     string          `json:"type" example:"text"`
	Url      string          `json:"url,omitempty"`
	Votes    Tally           `json:"votes"`
	Metadata common.Metadata `json:"metadata"`
}

func FromDomainEntry(e *content.Entry) Entry {
	return Entry{
		ID:      string(e.ID),
		Owner:   string(e.Owner),
		Contest: string(e.Contest),
		Data:    e.Payload.Data,
		Type:    string(e.Payload.Type),
		Url:     e.Payload.Url,
		Votes: Tally{
			Total:  uint64(e.Tally.Total),
			Up:     uint64(e.Tally.Wins),
			Down:   uint64(e.Tally.Losses),
			Rating: float64(e.Tally.Rating),
		},
		Metadata: common.FromDomainMetadata(&e.Metadata),
	}
}
