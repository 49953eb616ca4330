package requests

type CreateMood struct {
	Scale  int      `json:"scale" validate:"required,mood_scale"`
	Note   string   `json:"note,omitempty" validate:"omitempty,max=2000"`
	Tags   []string `json:"tags,omitempty" validate:"omitempty,dive,max=40"`
	UserID string   `json:"-"`
}

type UpdateMood struct {
	Scale  int      `json:"scale" validate:"required,mood_scale"`
	Note   string   `json:"note,omitempty" validate:"omitempty,max=2000"`
	Tags   []string `json:"tags,omitempty" validate:"omitempty,dive,max=40"`
	MoodID string   `json:"-"`
	UserID string   `json:"-"`
}

type ListMoods struct {
	FromDate string `validate:"omitempty,datetime=2006-01-02"`
	ToDate   string `validate:"omitempty,datetime=2006-01-02"`
	UserID   string
}
