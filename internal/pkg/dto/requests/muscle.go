package requests

type CreateMuscle struct {
	Name        string `json:"name" validate:"required,min=2,max=60"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type UpdateMuscle struct {
	Name        string `json:"name" validate:"required,min=2,max=60"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	MuscleID    string `json:"-"`
}
