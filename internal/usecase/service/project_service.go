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
	createProjectError = errors.New("create project error")
	getProjectError    = errors.New("get project error")
	listProjectsError  = errors.New("list projects error")
	updateProjectError = errors.New("update project error")
	deleteProjectError = errors.New("delete project error")
	addMemberError     = errors.New("add project member error")
	removeMemberError  = errors.New("remove project member error")
)

const defaultProjectColor = "#4F46E5"

type ProjectRepository interface {
	Create(ctx context.Context, d *dto.CreateProjectDTO) (*result.ProjectResult, error)
	Get(ctx context.Context, projectId uuid.UUID) (*result.ProjectResult, error)
	ListByUser(ctx context.Context, userId uuid.UUID) ([]*result.ProjectSummary, error)
	Update(ctx context.Context, d *dto.UpdateProjectDTO) (*domain.Project, error)
	Delete(ctx context.Context, projectId uuid.UUID) error
	AddMember(ctx context.Context, d *dto.AddMemberDTO) (*domain.ProjectMember, error)
	RemoveMember(ctx context.Context, d *dto.RemoveMemberDTO) error
}

type ProjectService struct {
	repo ProjectRepository
	log  *zap.Logger
}

func NewProjectService(repo ProjectRepository, log *zap.Logger) *ProjectService {
	return &ProjectService{
		repo: repo,
		log:  log,
	}
}

func (s *ProjectService) Create(ctx context.Context, req *request.CreateProjectRequest) (*response.ProjectResponse, error) {
	s.log.Info("createProject request accepted",
		zap.String("title", req.Title),
		zap.String("owner_id", req.OwnerId),
	)

	if err := requireField(req.Title, "title"); err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	ownerId, err := parseID(req.OwnerId, "owner_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	color := req.Color
	if color == "" {
		color = defaultProjectColor
	}

	// Build dto
	d := &dto.CreateProjectDTO{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: optionalString(req.Description),
		Color:       color,
		OwnerId:     ownerId,
	}

	res, err := s.repo.Create(ctx, d)
	if err != nil {
		s.log.Error("failed to create project",
			zap.String("owner_id", req.OwnerId),
			zap.Error(err),
		)

		// Map errors: a bad owner FK means the owner does not exist
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrUserNotFound, err)
		}

		return nil, fmt.Errorf("%w: %w", createProjectError, err)
	}

	s.log.Info("project created",
		zap.String("project_id", res.Project.Id.String()),
		zap.String("owner_id", req.OwnerId),
	)

	return projectResponse(res), nil
}

func (s *ProjectService) Get(ctx context.Context, req *request.GetProjectRequest) (*response.ProjectResponse, error) {
	projectId, err := parseID(req.ProjectId, "project_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	res, err := s.repo.Get(ctx, projectId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrProjectNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", getProjectError, err)
	}

	return projectResponse(res), nil
}

func (s *ProjectService) List(ctx context.Context, req *request.ListProjectsRequest) (*response.ListProjectsResponse, error) {
	userId, err := parseID(req.UserId, "user_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	res, err := s.repo.ListByUser(ctx, userId)
	if err != nil {
		s.log.Error("failed to list projects",
			zap.String("user_id", req.UserId),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", listProjectsError, err)
	}

	projects := make([]*response.ProjectSummaryResponse, 0, len(res))
	for _, p := range res {
		projects = append(projects, &response.ProjectSummaryResponse{
			Project:            p.Project,
			TaskCount:          p.TaskCount,
			CompletedTaskCount: p.CompletedTaskCount,
		})
	}

	return &response.ListProjectsResponse{
		UserId:   userId.String(),
		Projects: projects,
	}, nil
}

func (s *ProjectService) Update(ctx context.Context, req *request.UpdateProjectRequest) (*response.UpdateProjectResponse, error) {
	s.log.Info("updateProject request accepted", zap.String("project_id", req.ProjectId))

	projectId, err := parseID(req.ProjectId, "project_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	if req.Title != nil {
		if err := requireField(*req.Title, "title"); err != nil {
			return nil, WrapError(ErrValidation, err)
		}
	}

	d := &dto.UpdateProjectDTO{
		ProjectId:   projectId,
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	}

	res, err := s.repo.Update(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrProjectNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", updateProjectError, err)
	}

	return &response.UpdateProjectResponse{Project: res}, nil
}

func (s *ProjectService) Delete(ctx context.Context, req *request.DeleteProjectRequest) (*response.DeleteProjectResponse, error) {
	s.log.Info("deleteProject request accepted", zap.String("project_id", req.ProjectId))

	projectId, err := parseID(req.ProjectId, "project_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	if err := s.repo.Delete(ctx, projectId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrProjectNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", deleteProjectError, err)
	}

	s.log.Info("project deleted", zap.String("project_id", req.ProjectId))

	return &response.DeleteProjectResponse{
		ProjectId: projectId.String(),
		Deleted:   true,
	}, nil
}

func (s *ProjectService) AddMember(ctx context.Context, req *request.AddMemberRequest) (*response.AddMemberResponse, error) {
	s.log.Info("addMember request accepted",
		zap.String("project_id", req.ProjectId),
		zap.String("user_id", req.UserId),
	)

	projectId, err := parseID(req.ProjectId, "project_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	userId, err := parseID(req.UserId, "user_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	role := domain.RoleMember
	if req.Role != "" {
		role = domain.Role(req.Role)
		if !role.Valid() {
			return nil, WrapError(ErrValidation, fmt.Errorf("role %q is not one of admin, member, viewer", req.Role))
		}
	}

	d := &dto.AddMemberDTO{
		ProjectId: projectId,
		UserId:    userId,
		Role:      role,
	}

	res, err := s.repo.AddMember(ctx, d)
	if err != nil {
		s.log.Error("failed to add project member",
			zap.String("project_id", req.ProjectId),
			zap.String("user_id", req.UserId),
			zap.Error(err),
		)

		// Map errors
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, WrapError(ErrAlreadyMember, err)
		}
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrUserNotFound, err)
		}

		return nil, fmt.Errorf("%w: %w", addMemberError, err)
	}

	return &response.AddMemberResponse{Member: res}, nil
}

func (s *ProjectService) RemoveMember(ctx context.Context, req *request.RemoveMemberRequest) (*response.RemoveMemberResponse, error) {
	s.log.Info("removeMember request accepted",
		zap.String("project_id", req.ProjectId),
		zap.String("user_id", req.UserId),
	)

	projectId, err := parseID(req.ProjectId, "project_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	userId, err := parseID(req.UserId, "user_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	// The owner's membership cannot be removed
	project, err := s.repo.Get(ctx, projectId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrProjectNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", removeMemberError, err)
	}
	if project.Project.OwnerId == userId {
		return nil, WrapError(ErrInvalidInput, errors.New("project owner cannot be removed"))
	}

	d := &dto.RemoveMemberDTO{
		ProjectId: projectId,
		UserId:    userId,
	}

	if err := s.repo.RemoveMember(ctx, d); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrMemberNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", removeMemberError, err)
	}

	return &response.RemoveMemberResponse{
		ProjectId: projectId.String(),
		UserId:    userId.String(),
		Removed:   true,
	}, nil
}

func projectResponse(res *result.ProjectResult) *response.ProjectResponse {
	members := make([]*response.MemberResponse, 0, len(res.Members))
	for _, m := range res.Members {
		members = append(members, &response.MemberResponse{
			UserId:    m.UserId.String(),
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Email:     m.Email,
			Role:      string(m.Role),
			JoinedAt:  m.JoinedAt,
		})
	}
	return &response.ProjectResponse{
		Project:            res.Project,
		Members:            members,
		TaskCount:          res.TaskCount,
		CompletedTaskCount: res.CompletedTaskCount,
	}
}
