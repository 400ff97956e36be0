package run

import (
	"errors"
	"time"
)

// DateLayout is the literal calendar-date format runs are logged under.
// The date string drives all grouping; it is never reconciled with
// RecordedAt, so backdated entries group under the date the athlete chose.
const DateLayout = "2006-01-02"

type Run struct {
	ID         string    `json:"id"`
	TrackID    string    `json:"track_id"`
	Date       string    `json:"date"`
	Seconds    float64   `json:"seconds"`
	Note       string    `json:"note,omitempty"`
	CreatedBy  string    `json:"created_by"`
	RecordedAt time.Time `json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
}

var (
	ErrTrackRequired  = errors.New("track_id required")
	ErrInvalidSeconds = errors.New("seconds must be greater than 0")
	ErrInvalidDate    = errors.New("date must be formatted YYYY-MM-DD")
)

// Validate checks the fields a run must carry before it enters the log.
// Shared by the create handler and the CSV importer.
func Validate(r Run) error {
	if r.TrackID == "" {
		return ErrTrackRequired
	}
	if r.Seconds <= 0 {
		return ErrInvalidSeconds
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
