package race

import "time"

// Race is an entry in the athlete's competition roster. GoalSeconds and
// ResultSeconds are 0 until set; a finished race carries its result time.
type Race struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Venue          string    `json:"venue"`
	Date           string    `json:"date"`
	DistanceMeters float64   `json:"distance_meters"`
	GoalSeconds    float64   `json:"goal_seconds,omitempty"`
	ResultSeconds  float64   `json:"result_seconds,omitempty"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}
