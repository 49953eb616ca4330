package responses

type AvailabilityWindow struct {
	DayType  string `json:"day_type"`
	OpensAt  string `json:"opens_at"`
	ClosesAt string `json:"closes_at"`
}

type ContactMethod struct {
	Value        string               `json:"value"`
	Instruction  string               `json:"instruction,omitempty"`
	Availability []AvailabilityWindow `json:"availability,omitempty"`
}

type Contact struct {
	Voice   *ContactMethod `json:"voice,omitempty"`
	Text    *ContactMethod `json:"text,omitempty"`
	Email   *ContactMethod `json:"email,omitempty"`
	Webchat *ContactMethod `json:"webchat,omitempty"`
}

type Helpline struct {
	HelplineID  string  `json:"helpline_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Contact     Contact `json:"contact"`
}
