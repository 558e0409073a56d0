package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/domain"
	"github.com/taskflow/backend/internal/infrastructure/models/dto"
	"github.com/taskflow/backend/internal/infrastructure/repository"
	"github.com/taskflow/backend/internal/transport/dto/request"
	"github.com/taskflow/backend/internal/transport/dto/response"
)

var (
	addAttachmentError    = errors.New("add attachment error")
	listAttachmentsError  = errors.New("list attachments error")
	deleteAttachmentError = errors.New("delete attachment error")
)

const defaultContentType = "application/octet-stream"

type AttachmentRepository interface {
	Add(ctx context.Context, d *dto.AddAttachmentDTO) (*domain.Attachment, error)
	ListByTask(ctx context.Context, taskId uuid.UUID) ([]*domain.Attachment, error)
	Delete(ctx context.Context, attachmentId uuid.UUID) error
}

type AttachmentService struct {
	repo AttachmentRepository
	log  *zap.Logger
}

func NewAttachmentService(repo AttachmentRepository, log *zap.Logger) *AttachmentService {
	return &AttachmentService{
		repo: repo,
		log:  log,
	}
}

func (s *AttachmentService) Add(ctx context.Context, req *request.AddAttachmentRequest) (*response.AttachmentResponse, error) {
	s.log.Info("addAttachment request accepted",
		zap.String("task_id", req.TaskId),
		zap.String("file_name", req.FileName),
	)

	taskId, err := parseID(req.TaskId, "task_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	uploaderId, err := parseID(req.UploaderId, "uploader_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	if err := requireField(req.FileName, "file_name"); err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	if req.SizeBytes < 0 {
		return nil, WrapError(ErrValidation, errors.New("size_bytes must not be negative"))
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	d := &dto.AddAttachmentDTO{
		Id:          uuid.New(),
		TaskId:      taskId,
		UploaderId:  uploaderId,
		FileName:    req.FileName,
		ContentType: contentType,
		SizeBytes:   req.SizeBytes,
	}

	res, err := s.repo.Add(ctx, d)
	if err != nil {
		s.log.Error("failed to add attachment",
			zap.String("task_id", req.TaskId),
			zap.Error(err),
		)

		// A bad FK means the task or the uploader does not exist
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrTaskNotFound, err)
		}

		return nil, fmt.Errorf("%w: %w", addAttachmentError, err)
	}

	return &response.AttachmentResponse{Attachment: res}, nil
}

func (s *AttachmentService) List(ctx context.Context, req *request.ListAttachmentsRequest) (*response.ListAttachmentsResponse, error) {
	taskId, err := parseID(req.TaskId, "task_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	res, err := s.repo.ListByTask(ctx, taskId)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listAttachmentsError, err)
	}

	return &response.ListAttachmentsResponse{
		TaskId:      taskId.String(),
		Attachments: res,
	}, nil
}

func (s *AttachmentService) Delete(ctx context.Context, req *request.DeleteAttachmentRequest) (*response.DeleteAttachmentResponse, error) {
	s.log.Info("deleteAttachment request accepted", zap.String("attachment_id", req.AttachmentId))

	attachmentId, err := parseID(req.AttachmentId, "attachment_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	if err := s.repo.Delete(ctx, attachmentId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrAttachmentNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", deleteAttachmentError, err)
	}

	return &response.DeleteAttachmentResponse{
		AttachmentId: attachmentId.String(),
		Deleted:      true,
	}, nil
}
