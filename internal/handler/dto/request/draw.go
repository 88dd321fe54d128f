package request

import (
	"strings"
	"time"
)

type CreateDrawRequest struct {
	URL         string `json:"url" binding:"required,url"`
	TotalSlots  *int   `json:"total_slots,omitempty" binding:"omitempty,min=1,max=1000000"`
	WinnerCount int    `json:"winner_count" binding:"required,min=1,max=100"`
	Override    bool   `json:"override"`
}

func (r CreateDrawRequest) TrimmedURL() string {
	return strings.TrimSpace(r.URL)
}

type RollHistoryQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// Day falls back to the UTC day of now when no date was given.
func (q RollHistoryQuery) Day(now time.Time) time.Time {
	if q.Date == "" {
		return now.UTC()
	}
	d, err := time.Parse(time.DateOnly, q.Date)
	if err != nil {
		return now.UTC()
	}
	return d
}
