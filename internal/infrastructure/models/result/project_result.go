package result

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskflow/backend/internal/domain"
)

type MemberResult struct {
	UserId    uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Role      domain.Role
	JoinedAt  time.Time
}

type ProjectResult struct {
	Project            *domain.Project
	Members            []*MemberResult
	TaskCount          int
	CompletedTaskCount int
}

type ProjectSummary struct {
	Project            *domain.Project
	TaskCount          int
	CompletedTaskCount int
}
