package models

type EmergencyContact struct {
	ID           string `bson:"_id,omitempty"`
	UserID       string `bson:"userId"`
	Name         string `bson:"name"`
	Relationship string `bson:"relationship"`
	PhoneNumber  string `bson:"phoneNumber"`
	Email        string `bson:"email,omitempty"`
	TimeModel    `bson:",inline"`
}
