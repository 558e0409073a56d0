package response

import "github.com/taskflow/backend/internal/domain"

type RegisterResponse struct {
	User *domain.User `json:"user"`
}

type GetUserResponse struct {
	User *domain.User `json:"user"`
}

type SetRoleResponse struct {
	User *domain.User `json:"user"`
}

type TouchResponse struct {
	User *domain.User `json:"user"`
}
