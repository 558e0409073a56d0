package result

import "github.com/taskflow/backend/internal/domain"

type TaskDetailResult struct {
	Task        *domain.Task
	Comments    []*domain.Comment
	Attachments []*domain.Attachment
}
