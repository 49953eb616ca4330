package responses

type UserProfile struct {
	UserID            string `json:"user_id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Fullname          string `json:"fullname,omitempty"`
	Bio               string `json:"bio,omitempty"`
	BirthDate         string `json:"birth_date,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}
