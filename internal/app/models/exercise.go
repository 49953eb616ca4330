package models

type Exercise struct {
	ID          string   `bson:"_id,omitempty"`
	Name        string   `bson:"name"`
	Description string   `bson:"description"`
	MuscleIDs   []string `bson:"muscleIds"`
	Difficulty  string   `bson:"difficulty"`
	Equipment   []string `bson:"equipment,omitempty"`
	TimeModel   `bson:",inline"`
}
