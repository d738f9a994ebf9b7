package contest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domainContest "github.com/duelboard/duelboard/internal/domain/contest"
)

func Test_contestsControllerImpl_Current(t *testing.T) {
	c := New(&domainContest.MockContestsService{}).(*impl)
	// halfway through the mock contest's January window
	c.getNowUtc = func() time.Time {
		return domainContest.MockDomainContest.Start.Add(domainContest.MockDomainContest.End.Sub(domainContest.MockDomainContest.Start) / 2)
	}

	got, apiErr := c.Current(context.Background())
	assert.Nil(t, apiErr)
	assert.EqualValues(t, string(domainContest.MockDomainContest.ID), got.ID)
	assert.InDelta(t, 0.5, got.Progress, 0.0001)
}

func Test_contestsControllerImpl_Current_none(t *testing.T) {
	contests := domainContest.MockContestsService{
		CurrentOverride: func() (*domainContest.Contest, error) {
			return nil, domainContest.NoCurrentContest{}
		},
	}
	c := New(&contests)
	_, apiErr := c.Current(context.Background())
	assert.EqualValues(t, 404, apiErr.StatusCode)
}
