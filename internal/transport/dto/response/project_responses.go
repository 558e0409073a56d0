package response

import (
	"time"

	"github.com/taskflow/backend/internal/domain"
)

type MemberResponse struct {
	UserId    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}

type ProjectResponse struct {
	Project            *domain.Project   `json:"project"`
	Members            []*MemberResponse `json:"members"`
	TaskCount          int               `json:"task_count"`
	CompletedTaskCount int               `json:"completed_task_count"`
}

type ProjectSummaryResponse struct {
	Project            *domain.Project `json:"project"`
	TaskCount          int             `json:"task_count"`
	CompletedTaskCount int             `json:"completed_task_count"`
}

type ListProjectsResponse struct {
	UserId   string                    `json:"user_id"`
	Projects []*ProjectSummaryResponse `json:"projects"`
}

type UpdateProjectResponse struct {
	Project *domain.Project `json:"project"`
}

type DeleteProjectResponse struct {
	ProjectId string `json:"project_id"`
	Deleted   bool   `json:"deleted"`
}

type AddMemberResponse struct {
	Member *domain.ProjectMember `json:"member"`
}

type RemoveMemberResponse struct {
	ProjectId string `json:"project_id"`
	UserId    string `json:"user_id"`
	Removed   bool   `json:"removed"`
}
