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
	addCommentError    = errors.New("add comment error")
	listCommentsError  = errors.New("list comments error")
	deleteCommentError = errors.New("delete comment error")
)

type CommentRepository interface {
	Add(ctx context.Context, d *dto.AddCommentDTO) (*domain.Comment, error)
	ListByTask(ctx context.Context, taskId uuid.UUID) ([]*domain.Comment, error)
	Delete(ctx context.Context, commentId uuid.UUID) error
}

type CommentService struct {
	repo CommentRepository
	log  *zap.Logger
}

func NewCommentService(repo CommentRepository, log *zap.Logger) *CommentService {
	return &CommentService{
		repo: repo,
		log:  log,
	}
}

func (s *CommentService) Add(ctx context.Context, req *request.AddCommentRequest) (*response.CommentResponse, error) {
	s.log.Info("addComment request accepted",
		zap.String("task_id", req.TaskId),
		zap.String("author_id", req.AuthorId),
	)

	taskId, err := parseID(req.TaskId, "task_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	authorId, err := parseID(req.AuthorId, "author_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	if err := requireField(req.Body, "body"); err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	d := &dto.AddCommentDTO{
		Id:       uuid.New(),
		TaskId:   taskId,
		AuthorId: authorId,
		Body:     req.Body,
	}

	res, err := s.repo.Add(ctx, d)
	if err != nil {
		s.log.Error("failed to add comment",
			zap.String("task_id", req.TaskId),
			zap.Error(err),
		)

		// A bad FK means the task or the author does not exist
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrTaskNotFound, err)
		}

		return nil, fmt.Errorf("%w: %w", addCommentError, err)
	}

	return &response.CommentResponse{Comment: res}, nil
}

func (s *CommentService) List(ctx context.Context, req *request.ListCommentsRequest) (*response.ListCommentsResponse, error) {
	taskId, err := parseID(req.TaskId, "task_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	res, err := s.repo.ListByTask(ctx, taskId)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listCommentsError, err)
	}

	return &response.ListCommentsResponse{
		TaskId:   taskId.String(),
		Comments: res,
	}, nil
}

func (s *CommentService) Delete(ctx context.Context, req *request.DeleteCommentRequest) (*response.DeleteCommentResponse, error) {
	s.log.Info("deleteComment request accepted", zap.String("comment_id", req.CommentId))

	commentId, err := parseID(req.CommentId, "comment_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	if err := s.repo.Delete(ctx, commentId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrCommentNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", deleteCommentError, err)
	}

	return &response.DeleteCommentResponse{
		CommentId: commentId.String(),
		Deleted:   true,
	}, nil
}
