package models

type WorkoutEntry struct {
	ExerciseID        string `bson:"exerciseId"`
	Sets              int    `bson:"sets,omitempty"`
	Reps              int    `bson:"reps,omitempty"`
	DurationInSeconds int    `bson:"durationInSeconds,omitempty"`
}

type Workout struct {
	ID        string         `bson:"_id,omitempty"`
	UserID    string         `bson:"userId"`
	Name      string         `bson:"name"`
	Notes     string         `bson:"notes,omitempty"`
	Entries   []WorkoutEntry `bson:"entries"`
	TimeModel `bson:",inline"`
}
