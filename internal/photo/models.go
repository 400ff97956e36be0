package photo

import "time"

// Photo is the stored metadata for one run attachment. Content bytes are
// fetched separately so listings stay light.
type Photo struct {
	ID        string    `json:"id"`
	RunID     string    `json:"run_id"`
	UserID    string    `json:"user_id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}
