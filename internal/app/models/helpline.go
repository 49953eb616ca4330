package models

// AvailabilityWindow is part of a helpline's static configuration. OpensAt and
// ClosesAt are HH:MM 24-hour wall-clock strings; a window that fails to parse
// never grants availability.
type AvailabilityWindow struct {
	DayType  string `bson:"dayType"`
	OpensAt  string `bson:"opensAt"`
	ClosesAt string `bson:"closesAt"`
}

// ContactMethod is one channel through which a helpline can be reached. An
// empty Availability slice means the method is reachable around the clock.
type ContactMethod struct {
	Value        string               `bson:"value"`
	Instruction  string               `bson:"instruction,omitempty"`
	Availability []AvailabilityWindow `bson:"availability,omitempty"`
}

type Contact struct {
	Voice   *ContactMethod `bson:"voice,omitempty"`
	Text    *ContactMethod `bson:"text,omitempty"`
	Email   *ContactMethod `bson:"email,omitempty"`
	Webchat *ContactMethod `bson:"webchat,omitempty"`
}

type Helpline struct {
	ID          string  `bson:"_id,omitempty"`
	Name        string  `bson:"name"`
	Description string  `bson:"description"`
	Contact     Contact `bson:"contact"`
	TimeModel   `bson:",inline"`
}
