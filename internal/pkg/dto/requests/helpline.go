package requests

type AvailabilityWindowPayload struct {
	DayType  string `json:"day_type" validate:"required,oneof=weekday weekend"`
	OpensAt  string `json:"opens_at" validate:"required,clock_time"`
	ClosesAt string `json:"closes_at" validate:"required,clock_time"`
}

type ContactMethodPayload struct {
	Value        string                      `json:"value" validate:"required"`
	Instruction  string                      `json:"instruction,omitempty" validate:"omitempty,max=500"`
	Availability []AvailabilityWindowPayload `json:"availability,omitempty" validate:"omitempty,dive"`
}

type ContactPayload struct {
	Voice   *ContactMethodPayload `json:"voice,omitempty" validate:"omitempty"`
	Text    *ContactMethodPayload `json:"text,omitempty" validate:"omitempty"`
	Email   *ContactMethodPayload `json:"email,omitempty" validate:"omitempty"`
	Webchat *ContactMethodPayload `json:"webchat,omitempty" validate:"omitempty"`
}

type HelplinePayload struct {
	Name        string         `json:"name" validate:"required,min=2,max=150"`
	Description string         `json:"description" validate:"required,max=2000"`
	Contact     ContactPayload `json:"contact"`
	HelplineID  string         `json:"-"`
}

type ListHelplines struct {
	// OpenNow is true only when the query parameter is the literal string "true".
	OpenNow bool
}
