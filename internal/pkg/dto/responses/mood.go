package responses

import "time"

type Mood struct {
	MoodID    string    `json:"mood_id"`
	Scale     int       `json:"scale"`
	Note      string    `json:"note,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
