package model

import (
	"strings"
	"time"

	"yourfuture/internal/serrors"
)

// Meetup is an event announcement submitted for moderation
type Meetup struct {
	ID            int64
	Title         string
	Date          time.Time
	Description   string
	Link          string
	Moderation
	CreatorUserID int64
	CreatedAt     time.Time
}

// MeetupWithCreator is a meetup joined with its creator's username.
type MeetupWithCreator struct {
	Meetup
	CreatorUsername *string
}

// CreateMeetupRequest is the payload of POST /meetups. Date is ISO-8601; a
// value without an offset is taken as UTC.
type CreateMeetupRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required"`
	Link        string `json:"link" binding:"required,httpurl"`
}

// meetupDateLayouts are tried in order; layouts without an offset are UTC.
var meetupDateLayouts = []string{ //nolint: gochecknoglobals
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseMeetupDate parses an ISO-8601 date and returns it in UTC.
func ParseMeetupDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range meetupDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, serrors.New(serrors.ErrBadRequest, "invalid date %q, use ISO-8601", s)
}
