package responses

type WorkoutEntry struct {
	ExerciseID        string `json:"exercise_id"`
	Sets              int    `json:"sets,omitempty"`
	Reps              int    `json:"reps,omitempty"`
	DurationInSeconds int    `json:"duration_in_seconds,omitempty"`
}

type Workout struct {
	WorkoutID string         `json:"workout_id"`
	Name      string         `json:"name"`
	Notes     string         `json:"notes,omitempty"`
	Entries   []WorkoutEntry `json:"entries"`
}
