package request

type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	AvatarURL       string `json:"avatar_url,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type GetUserRequest struct {
	UserId string `json:"user_id"`
}

type SetRoleRequest struct {
	UserId string `json:"user_id"`
	Role   string `json:"role"`
}

type TouchRequest struct {
	UserId string `json:"user_id"`
}
