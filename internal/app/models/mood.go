package models

type Mood struct {
	ID        string   `bson:"_id,omitempty"`
	UserID    string   `bson:"userId"`
	Scale     int      `bson:"scale"`
	Note      string   `bson:"note,omitempty"`
	Tags      []string `bson:"tags,omitempty"`
	TimeModel `bson:",inline"`
}
