package track

import "time"

// Track is a named fixed-distance course, e.g. "30m sprint" or "flying 20".
// DistanceMeters may be 0 for drills where average speed is meaningless.
type Track struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DistanceMeters float64   `json:"distance_meters"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}
