package requests

type CreateExercise struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"required,max=2000"`
	MuscleIDs   []string `json:"muscle_ids" validate:"required,min=1,dive,required"`
	Difficulty  string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Equipment   []string `json:"equipment,omitempty"`
}

type UpdateExercise struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"required,max=2000"`
	MuscleIDs   []string `json:"muscle_ids" validate:"required,min=1,dive,required"`
	Difficulty  string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Equipment   []string `json:"equipment,omitempty"`
	ExerciseID  string   `json:"-"`
}

type ListExercises struct {
	MuscleID string
}
