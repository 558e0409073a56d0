package response

import "github.com/taskflow/backend/internal/domain"

type AttachmentResponse struct {
	Attachment *domain.Attachment `json:"attachment"`
}

type ListAttachmentsResponse struct {
	TaskId      string               `json:"task_id"`
	Attachments []*domain.Attachment `json:"attachments"`
}

type DeleteAttachmentResponse struct {
	AttachmentId string `json:"attachment_id"`
	Deleted      bool   `json:"deleted"`
}
