package requests

type UpdateProfile struct {
	Fullname       string `json:"fullname,omitempty" validate:"omitempty,max=100"`
	Bio            string `json:"bio,omitempty" validate:"omitempty,max=500"`
	BirthDate      string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02,not_future_date"`
	ProfilePicture string `json:"profile_picture,omitempty"`

	ProfilePictureData      []byte `json:"-"`
	ProfilePictureExtension string `json:"-"`
}
