package dto

import "github.com/google/uuid"

type AddAttachmentDTO struct {
	Id          uuid.UUID
	TaskId      uuid.UUID
	UploaderId  uuid.UUID
	FileName    string
	ContentType string
	SizeBytes   int64
}
