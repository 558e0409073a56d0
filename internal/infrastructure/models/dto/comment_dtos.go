package dto

import "github.com/google/uuid"

type AddCommentDTO struct {
	Id       uuid.UUID
	TaskId   uuid.UUID
	AuthorId uuid.UUID
	Body     string
}
