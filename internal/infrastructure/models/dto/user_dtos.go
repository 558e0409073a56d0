package dto

import (
	"github.com/google/uuid"

	"github.com/taskflow/backend/internal/domain"
)

type CreateUserDTO struct {
	Id        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	AvatarURL *string
	Role      domain.Role
}

type SetRoleDTO struct {
	UserId uuid.UUID
	Role   domain.Role
}
