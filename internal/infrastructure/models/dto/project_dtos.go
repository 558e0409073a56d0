package dto

import (
	"github.com/google/uuid"

	"github.com/taskflow/backend/internal/domain"
)

type CreateProjectDTO struct {
	Id          uuid.UUID
	Title       string
	Description *string
	Color       string
	OwnerId     uuid.UUID
}

type UpdateProjectDTO struct {
	ProjectId   uuid.UUID
	Title       *string
	Description *string
	Color       *string
}

type AddMemberDTO struct {
	ProjectId uuid.UUID
	UserId    uuid.UUID
	Role      domain.Role
}

type RemoveMemberDTO struct {
	ProjectId uuid.UUID
	UserId    uuid.UUID
}
