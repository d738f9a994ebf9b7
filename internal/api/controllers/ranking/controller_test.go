package ranking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duelboard/duelboard/internal/domain/content"
	domainRanking "github.com/duelboard/duelboard/internal/domain/ranking"
)

type mockRankingsService struct {
	byRatingCalled     uint
	byRatingOverride   func() ([]domainRanking.RatingRanked, error)
	byApprovalCalled   uint
	byApprovalOverride func() ([]domainRanking.ApprovalRanked, error)
}

func (m *mockRankingsService) ByRating(ctx context.Context) ([]domainRanking.RatingRanked, error) {
	m.byRatingCalled++
	if m.byRatingOverride != nil {
		return m.byRatingOverride()
	}
	return []domainRanking.RatingRanked{
		{Entry: content.MockDomainEntry, Position: 1},
	}, nil
}

func (m *mockRankingsService) ByApproval(ctx context.Context) ([]domainRanking.ApprovalRanked, error) {
	m.byApprovalCalled++
	if m.byApprovalOverride != nil {
		return m.byApprovalOverride()
	}
	return []domainRanking.ApprovalRanked{
		{Entry: content.MockDomainEntry, ApprovalRatio: 0.5, NetScore: 0},
	}, nil
}

func Test_rankingsControllerImpl_ByRating(t *testing.T) {
	c := New(&mockRankingsService{})
	got, apiErr := c.ByRating(context.Background())
	assert.Nil(t, apiErr)
	assert.Len(t, got, 1)
	assert.EqualValues(t, 1, got[0].Position)
	assert.EqualValues(t, string(content.MockDomainEntry.ID), got[0].Entry.ID)
}

func Test_rankingsControllerImpl_ByApproval(t *testing.T) {
	c := New(&mockRankingsService{})
	got, apiErr := c.ByApproval(context.Background())
	assert.Nil(t, apiErr)
	assert.Len(t, got, 1)
	assert.EqualValues(t, 0.5, got[0].ApprovalRatio)
}

func Test_rankingsControllerImpl_errors(t *testing.T) {
	svc := mockRankingsService{
		byRatingOverride: func() ([]domainRanking.RatingRanked, error) {
			return nil, assert.AnError
		},
		byApprovalOverride: func() ([]domainRanking.ApprovalRanked, error) {
			return nil, assert.AnError
		},
	}
	c := New(&svc)

	_, apiErr := c.ByRating(context.Background())
	assert.EqualValues(t, 500, apiErr.StatusCode)
	_, apiErr = c.ByApproval(context.Background())
	assert.EqualValues(t, 500, apiErr.StatusCode)
}
