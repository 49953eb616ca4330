package responses

type Exercise struct {
	ExerciseID  string   `json:"exercise_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MuscleIDs   []string `json:"muscle_ids"`
	Difficulty  string   `json:"difficulty"`
	Equipment   []string `json:"equipment,omitempty"`
}
