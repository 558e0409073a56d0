package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskflow/backend/internal/domain"
)

type CreateTaskDTO struct {
	Id          uuid.UUID
	ProjectId   uuid.UUID
	Title       string
	Description *string
	Priority    domain.TaskPriority
	AssigneeId  *uuid.UUID
	DueDate     *time.Time
}

type UpdateTaskDTO struct {
	TaskId      uuid.UUID
	Title       *string
	Description *string
	Priority    *domain.TaskPriority
	DueDate     *time.Time
}

type SetStatusDTO struct {
	TaskId uuid.UUID
	Status domain.TaskStatus
}

type AssignTaskDTO struct {
	TaskId     uuid.UUID
	AssigneeId *uuid.UUID
}

type ListTasksDTO struct {
	ProjectId  uuid.UUID
	Status     *domain.TaskStatus
	Priority   *domain.TaskPriority
	AssigneeId *uuid.UUID
}
