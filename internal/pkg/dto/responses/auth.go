package responses

type RegisterUser struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type LoginUser struct {
	Token string `json:"token"`
}
