package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/domain"
	"github.com/taskflow/backend/internal/infrastructure/models/dto"
	"github.com/taskflow/backend/internal/infrastructure/models/result"
	"github.com/taskflow/backend/internal/infrastructure/repository"
	"github.com/taskflow/backend/internal/transport/dto/request"
	"github.com/taskflow/backend/internal/transport/dto/response"
)

var (
	createTaskError = errors.New("create task error")
	getTaskError    = errors.New("get task error")
	listTasksError  = errors.New("list tasks error")
	updateTaskError = errors.New("update task error")
	setStatusError  = errors.New("set task status error")
	assignTaskError = errors.New("assign task error")
	deleteTaskError = errors.New("delete task error")
)

type TaskRepository interface {
	Create(ctx context.Context, d *dto.CreateTaskDTO) (*domain.Task, error)
	Get(ctx context.Context, taskId uuid.UUID) (*result.TaskDetailResult, error)
	List(ctx context.Context, d *dto.ListTasksDTO) ([]*domain.Task, error)
	Update(ctx context.Context, d *dto.UpdateTaskDTO) (*domain.Task, error)
	SetStatus(ctx context.Context, d *dto.SetStatusDTO) (*domain.Task, error)
	Assign(ctx context.Context, d *dto.AssignTaskDTO) (*domain.Task, error)
	Delete(ctx context.Context, taskId uuid.UUID) error
	MemberExists(ctx context.Context, projectId, userId uuid.UUID) (bool, error)
}

type TaskService struct {
	repo TaskRepository
	log  *zap.Logger
}

func NewTaskService(repo TaskRepository, log *zap.Logger) *TaskService {
	return &TaskService{
		repo: repo,
		log:  log,
	}
}

func (s *TaskService) Create(ctx context.Context, req *request.CreateTaskRequest) (*response.TaskResponse, error) {
	s.log.Info("createTask request accepted",
		zap.String("project_id", req.ProjectId),
		zap.String("title", req.Title),
	)

	projectId, err := parseID(req.ProjectId, "project_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	if err := requireField(req.Title, "title"); err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.TaskPriority(req.Priority)
		if !priority.Valid() {
			return nil, WrapError(ErrValidation, fmt.Errorf("priority %q is not one of low, medium, high, urgent", req.Priority))
		}
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	var assigneeId *uuid.UUID
	if req.AssigneeId != "" {
		id, err := parseID(req.AssigneeId, "assignee_id")
		if err != nil {
			return nil, WrapError(ErrValidation, err)
		}
		// The assignee has to belong to the project
		isMember, err := s.repo.MemberExists(ctx, projectId, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", createTaskError, err)
		}
		if !isMember {
			return nil, WrapError(ErrNotMember, nil)
		}
		assigneeId = &id
	}

	// Build dto
	d := &dto.CreateTaskDTO{
		Id:          uuid.New(),
		ProjectId:   projectId,
		Title:       req.Title,
		Description: optionalString(req.Description),
		Priority:    priority,
		AssigneeId:  assigneeId,
		DueDate:     dueDate,
	}

	res, err := s.repo.Create(ctx, d)
	if err != nil {
		s.log.Error("failed to create task",
			zap.String("project_id", req.ProjectId),
			zap.Error(err),
		)

		// Map errors
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrProjectNotFound, err)
		}
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrValidation, err)
		}

		return nil, fmt.Errorf("%w: %w", createTaskError, err)
	}

	s.log.Info("task created",
		zap.String("task_id", res.Id.String()),
		zap.String("project_id", req.ProjectId),
	)

	return &response.TaskResponse{Task: res}, nil
}

func (s *TaskService) Get(ctx context.Context, req *request.GetTaskRequest) (*response.TaskDetailResponse, error) {
	taskId, err := parseID(req.TaskId, "task_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	res, err := s.repo.Get(ctx, taskId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrTaskNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", getTaskError, err)
	}

	return &response.TaskDetailResponse{
		Task:        res.Task,
		Comments:    res.Comments,
		Attachments: res.Attachments,
	}, nil
}

func (s *TaskService) List(ctx context.Context, req *request.ListTasksRequest) (*response.ListTasksResponse, error) {
	projectId, err := parseID(req.ProjectId, "project_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	d := &dto.ListTasksDTO{ProjectId: projectId}

	if req.Status != "" {
		status := domain.TaskStatus(req.Status)
		if !status.Valid() {
			return nil, WrapError(ErrValidation, fmt.Errorf("status %q is not one of todo, in_progress, review, done", req.Status))
		}
		d.Status = &status
	}
	if req.Priority != "" {
		priority := domain.TaskPriority(req.Priority)
		if !priority.Valid() {
			return nil, WrapError(ErrValidation, fmt.Errorf("priority %q is not one of low, medium, high, urgent", req.Priority))
		}
		d.Priority = &priority
	}
	if req.AssigneeId != "" {
		id, err := parseID(req.AssigneeId, "assignee_id")
		if err != nil {
			return nil, WrapError(ErrValidation, err)
		}
		d.AssigneeId = &id
	}

	res, err := s.repo.List(ctx, d)
	if err != nil {
		s.log.Error("failed to list tasks",
			zap.String("project_id", req.ProjectId),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", listTasksError, err)
	}

	return &response.ListTasksResponse{
		ProjectId: projectId.String(),
		Tasks:     res,
	}, nil
}

func (s *TaskService) Update(ctx context.Context, req *request.UpdateTaskRequest) (*response.TaskResponse, error) {
	s.log.Info("updateTask request accepted", zap.String("task_id", req.TaskId))

	taskId, err := parseID(req.TaskId, "task_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	if req.Title != nil {
		if err := requireField(*req.Title, "title"); err != nil {
			return nil, WrapError(ErrValidation, err)
		}
	}

	d := &dto.UpdateTaskDTO{
		TaskId:      taskId,
		Title:       req.Title,
		Description: req.Description,
	}

	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		if !priority.Valid() {
			return nil, WrapError(ErrValidation, fmt.Errorf("priority %q is not one of low, medium, high, urgent", *req.Priority))
		}
		d.Priority = &priority
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, WrapError(ErrValidation, err)
		}
		d.DueDate = dueDate
	}

	res, err := s.repo.Update(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrTaskNotFound, err)
		}
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrValidation, err)
		}
		return nil, fmt.Errorf("%w: %w", updateTaskError, err)
	}

	return &response.TaskResponse{Task: res}, nil
}

func (s *TaskService) SetStatus(ctx context.Context, req *request.SetStatusRequest) (*response.TaskResponse, error) {
	s.log.Info("setStatus request accepted",
		zap.String("task_id", req.TaskId),
		zap.String("status", req.Status),
	)

	taskId, err := parseID(req.TaskId, "task_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	// Any value of the enumeration is reachable from any other
	status := domain.TaskStatus(req.Status)
	if !status.Valid() {
		return nil, WrapError(ErrValidation, fmt.Errorf("status %q is not one of todo, in_progress, review, done", req.Status))
	}

	d := &dto.SetStatusDTO{
		TaskId: taskId,
		Status: status,
	}

	res, err := s.repo.SetStatus(ctx, d)
	if err != nil {
		s.log.Error("failed to set task status",
			zap.String("task_id", req.TaskId),
			zap.Error(err),
		)

		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrTaskNotFound, err)
		}

		return nil, fmt.Errorf("%w: %w", setStatusError, err)
	}

	return &response.TaskResponse{Task: res}, nil
}

func (s *TaskService) Assign(ctx context.Context, req *request.AssignTaskRequest) (*response.TaskResponse, error) {
	s.log.Info("assignTask request accepted",
		zap.String("task_id", req.TaskId),
		zap.String("assignee_id", req.AssigneeId),
	)

	taskId, err := parseID(req.TaskId, "task_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	d := &dto.AssignTaskDTO{TaskId: taskId}

	// An empty assignee_id clears the assignment
	if req.AssigneeId != "" {
		assigneeId, err := parseID(req.AssigneeId, "assignee_id")
		if err != nil {
			return nil, WrapError(ErrValidation, err)
		}

		detail, err := s.repo.Get(ctx, taskId)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, WrapError(ErrTaskNotFound, err)
			}
			return nil, fmt.Errorf("%w: %w", assignTaskError, err)
		}

		isMember, err := s.repo.MemberExists(ctx, detail.Task.ProjectId, assigneeId)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", assignTaskError, err)
		}
		if !isMember {
			return nil, WrapError(ErrNotMember, nil)
		}
		d.AssigneeId = &assigneeId
	}

	res, err := s.repo.Assign(ctx, d)
	if err != nil {
		s.log.Error("failed to assign task",
			zap.String("task_id", req.TaskId),
			zap.Error(err),
		)

		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrTaskNotFound, err)
		}

		return nil, fmt.Errorf("%w: %w", assignTaskError, err)
	}

	return &response.TaskResponse{Task: res}, nil
}

func (s *TaskService) Delete(ctx context.Context, req *request.DeleteTaskRequest) (*response.DeleteTaskResponse, error) {
	s.log.Info("deleteTask request accepted", zap.String("task_id", req.TaskId))

	taskId, err := parseID(req.TaskId, "task_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	if err := s.repo.Delete(ctx, taskId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrTaskNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", deleteTaskError, err)
	}

	return &response.DeleteTaskResponse{
		TaskId:  taskId.String(),
		Deleted: true,
	}, nil
}
