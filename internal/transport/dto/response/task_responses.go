package response

import "github.com/taskflow/backend/internal/domain"

type TaskResponse struct {
	Task *domain.Task `json:"task"`
}

type TaskDetailResponse struct {
	Task        *domain.Task         `json:"task"`
	Comments    []*domain.Comment    `json:"comments"`
	Attachments []*domain.Attachment `json:"attachments"`
}

type ListTasksResponse struct {
	ProjectId string         `json:"project_id"`
	Tasks     []*domain.Task `json:"tasks"`
}

type DeleteTaskResponse struct {
	TaskId  string `json:"task_id"`
	Deleted bool   `json:"deleted"`
}
