package vote

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apiVote "github.com/duelboard/duelboard/internal/api/models/vote"
	"github.com/duelboard/duelboard/internal/domain/content"
	domainUser "github.com/duelboard/duelboard/internal/domain/user"
	domainVote "github.com/duelboard/duelboard/internal/domain/vote"
)

var validWin = "b13faab6d47a459cae41f7b0110ac4a9"
var validLos = "41f7b0110ac4a9b13faab6d47a459cae"

func TestNewVotesController(t *testing.T) {
	assert.NotPanics(t, func() { New(&domainVote.MockVotesService{}) })
}

func Test_handleErr(t *testing.T) {
	type args struct {
		err error
	}
	tests := []struct {
		name     string
		args     args
		wantCode int
	}{
		{
			"random errors should 500",
			args{
				fmt.Errorf("wtf"),
			},
			500,
		},
		{
			"user NotFound errors should 404",
			args{
				domainUser.NotFound{},
			},
			404,
		},
		{
			"content NotFound errors should 404",
			args{
				content.NotFound{},
			},
			404,
		},
		{
			"SameContent errors should 400",
			args{
				domainVote.SameContent{},
			},
			400,
		},
		{
			"SelfVote errors should 403",
			args{
				domainVote.SelfVote{},
			},
			403,
		},
		{
			"InvalidVersion errors should 409",
			args{
				content.InvalidVersion{},
			},
			409,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := handleErr(tt.args.err)
			assert.EqualValues(t, tt.wantCode, got.StatusCode)
		})
	}
}

func Test_votesControllerImpl_Submit(t *testing.T) {
	type fields struct {
		votesService *domainVote.MockVotesService
	}
	type args struct {
		newVote apiVote.NewVote
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		wantErr  bool
		wantCode int
	}{
		{
			"should return a receipt when the service succeeds",
			fields{&domainVote.MockVotesService{}},
			args{apiVote.NewVote{Win: validWin, Los: validLos}},
			false,
			0,
		},
		{
			"should 400 on a malformed winner id without hitting the service",
			fields{&domainVote.MockVotesService{}},
			args{apiVote.NewVote{Win: "nope", Los: validLos}},
			true,
			400,
		},
		{
			"should 400 on a malformed loser id without hitting the service",
			fields{&domainVote.MockVotesService{}},
			args{apiVote.NewVote{Win: validWin, Los: "NOPE-not-hex"}},
			true,
			400,
		},
		{
			"should map service errors",
			fields{&domainVote.MockVotesService{
				SubmitOverride: func() (*domainVote.Receipt, error) {
					return nil, content.InvalidVersion{}
				},
			}},
			args{apiVote.NewVote{Win: validWin, Los: validLos}},
			true,
			409,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.fields.votesService)
			got, apiErr := c.Submit(context.Background(), domainUser.MockDomainUser.ID, &tt.args.newVote)
			if tt.wantErr {
				assert.Nil(t, got)
				assert.EqualValues(t, tt.wantCode, apiErr.StatusCode)
				if tt.wantCode == 400 {
					assert.EqualValues(t, 0, tt.fields.votesService.SubmitCalled)
				}
			} else {
				assert.Nil(t, apiErr)
				assert.EqualValues(t, domainVote.MockDomainReceipt.Modified, got.Modified)
				assert.EqualValues(t, string(domainVote.MockDomainReceipt.VoteID), got.VoteID)
			}
		})
	}
}
