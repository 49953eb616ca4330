package models

import "go.mongodb.org/mongo-driver/bson"

type User struct {
	ID                string `bson:"_id,omitempty"`
	Username          string `bson:"username"`
	Email             string `bson:"email"`
	Password          string `bson:"password"`
	Fullname          string `bson:"fullname,omitempty"`
	Bio               string `bson:"bio,omitempty"`
	BirthDate         string `bson:"birthDate,omitempty"`
	ProfilePictureKey string `bson:"profilePictureKey,omitempty"`
	Active            bool   `bson:"active"`
	TimeModel         `bson:",inline"`
}

func (u *User) ConvertToBsonM() bson.M {
	return bson.M{
		"username":          u.Username,
		"email":             u.Email,
		"password":          u.Password,
		"fullname":          u.Fullname,
		"bio":               u.Bio,
		"birthDate":         u.BirthDate,
		"profilePictureKey": u.ProfilePictureKey,
		"active":            u.Active,
		"updatedAt":         u.UpdatedAt,
	}
}
