package responses

type Muscle struct {
	MuscleID    string `json:"muscle_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
