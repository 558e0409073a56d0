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
	registerError = errors.New("register user error")
	getUserError  = errors.New("get user error")
	setRoleError  = errors.New("set user role error")
	touchError    = errors.New("touch user error")
)

type UserRepository interface {
	Create(ctx context.Context, d *dto.CreateUserDTO) (*domain.User, error)
	GetById(ctx context.Context, userId uuid.UUID) (*domain.User, error)
	SetRole(ctx context.Context, d *dto.SetRoleDTO) (*domain.User, error)
	Touch(ctx context.Context, userId uuid.UUID) (*domain.User, error)
}

type UserService struct {
	repo UserRepository
	log  *zap.Logger
}

func NewUserService(repo UserRepository, log *zap.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

func (s *UserService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	s.log.Info("register request accepted", zap.String("email", req.Email))

	// Form validation rules: required names, email format, password policy
	if err := requireField(req.FirstName, "first_name"); err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	if err := requireField(req.LastName, "last_name"); err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	if err := validateEmail(req.Email); err != nil {
		return nil, WrapError(ErrValidation, err)
	}
	if err := validatePassword(req.Password, req.ConfirmPassword); err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	// Build dto; the password is checked against the policy and discarded
	d := &dto.CreateUserDTO{
		Id:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		AvatarURL: optionalString(req.AvatarURL),
		Role:      domain.RoleMember,
	}

	res, err := s.repo.Create(ctx, d)
	if err != nil {
		s.log.Error("failed to register user",
			zap.String("email", req.Email),
			zap.Error(err),
		)

		// Map errors
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, WrapError(ErrEmailExists, err)
		}
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrValidation, err)
		}

		return nil, fmt.Errorf("%w: %w", registerError, err)
	}

	s.log.Info("user registered",
		zap.String("user_id", res.Id.String()),
		zap.String("email", res.Email),
	)

	return &response.RegisterResponse{User: res}, nil
}

func (s *UserService) Get(ctx context.Context, req *request.GetUserRequest) (*response.GetUserResponse, error) {
	userId, err := parseID(req.UserId, "user_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	res, err := s.repo.GetById(ctx, userId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrUserNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", getUserError, err)
	}

	return &response.GetUserResponse{User: res}, nil
}

func (s *UserService) SetRole(ctx context.Context, req *request.SetRoleRequest) (*response.SetRoleResponse, error) {
	s.log.Info("setRole request accepted",
		zap.String("user_id", req.UserId),
		zap.String("role", req.Role),
	)

	userId, err := parseID(req.UserId, "user_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	role := domain.Role(req.Role)
	if !role.Valid() {
		return nil, WrapError(ErrValidation, fmt.Errorf("role %q is not one of admin, member, viewer", req.Role))
	}

	d := &dto.SetRoleDTO{
		UserId: userId,
		Role:   role,
	}

	res, err := s.repo.SetRole(ctx, d)
	if err != nil {
		s.log.Error("failed to set user role",
			zap.String("user_id", req.UserId),
			zap.Error(err),
		)

		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrUserNotFound, err)
		}
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, WrapError(ErrValidation, err)
		}

		return nil, fmt.Errorf("%w: %w", setRoleError, err)
	}

	return &response.SetRoleResponse{User: res}, nil
}

func (s *UserService) Touch(ctx context.Context, req *request.TouchRequest) (*response.TouchResponse, error) {
	userId, err := parseID(req.UserId, "user_id")
	if err != nil {
		return nil, WrapError(ErrValidation, err)
	}

	res, err := s.repo.Touch(ctx, userId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrUserNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", touchError, err)
	}

	return &response.TouchResponse{User: res}, nil
}
