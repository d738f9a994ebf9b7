package contest

import (
	"time"

	"github.com/duelboard/duelboard/internal/domain/contest"
)

// Contest is a contest as rendered in the API, with how far along it is at
// the time of the request
type Contest struct {
	ID       string    `json:"id" example:"summer-2020"`
	Title    string    `json:"title" example:"Summer 2020"`
	Start    time.Time `json:"start" swaggertype:"string" format:"date-time"`
	End      time.Time `json:"end" swaggertype:"string" format:"date-time"`
	Progress float64   `json:"progress" example:"0.42"`
}

func FromDomainContest(c *contest.Contest, now time.Time) Contest {
	return Contest{
		ID:       string(c.ID),
		Title:    string(c.Title),
		Start:    c.Start,
		End:      c.End,
		Progress: c.Progress(now),
	}
}
