package requests

type CreateEmergencyContact struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Relationship string `json:"relationship" validate:"required,max=60"`
	PhoneNumber  string `json:"phone_number" validate:"required,phone_number"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	UserID       string `json:"-"`
}

type UpdateEmergencyContact struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Relationship string `json:"relationship" validate:"required,max=60"`
	PhoneNumber  string `json:"phone_number" validate:"required,phone_number"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	ContactID    string `json:"-"`
	UserID       string `json:"-"`
}
