package requests

type WorkoutEntry struct {
	ExerciseID        string `json:"exercise_id" validate:"required"`
	Sets              int    `json:"sets,omitempty" validate:"omitempty,min=1,max=50"`
	Reps              int    `json:"reps,omitempty" validate:"omitempty,min=1,max=500"`
	DurationInSeconds int    `json:"duration_in_seconds,omitempty" validate:"omitempty,min=1"`
}

type CreateWorkout struct {
	Name    string         `json:"name" validate:"required,min=2,max=100"`
	Notes   string         `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Entries []WorkoutEntry `json:"entries" validate:"required,min=1,dive"`
	UserID  string         `json:"-"`
}

type UpdateWorkout struct {
	Name      string         `json:"name" validate:"required,min=2,max=100"`
	Notes     string         `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Entries   []WorkoutEntry `json:"entries" validate:"required,min=1,dive"`
	WorkoutID string         `json:"-"`
	UserID    string         `json:"-"`
}
