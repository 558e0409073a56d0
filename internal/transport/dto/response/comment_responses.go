package response

import "github.com/taskflow/backend/internal/domain"

type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

type ListCommentsResponse struct {
	TaskId   string            `json:"task_id"`
	Comments []*domain.Comment `json:"comments"`
}

type DeleteCommentResponse struct {
	CommentId string `json:"comment_id"`
	Deleted   bool   `json:"deleted"`
}
