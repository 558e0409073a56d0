package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/domain"
	"github.com/taskflow/backend/internal/infrastructure/models/dto"
	"github.com/taskflow/backend/internal/infrastructure/repository"
	"github.com/taskflow/backend/internal/transport/dto/request"
)

// MockUserRepository mocks the repository for tests
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, d *dto.CreateUserDTO) (*domain.User, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetById(ctx context.Context, userId uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, d *dto.SetRoleDTO) (*domain.User, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Touch(ctx context.Context, userId uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func validRegisterRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		FirstName:       "Sarah",
		LastName:        "Chen",
		Email:           "sarah.chen@example.com",
		Password:        "Sup3rSecret",
		ConfirmPassword: "Sup3rSecret",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, logger)

	req := validRegisterRequest()

	expectedUser := &domain.User{
		Id:           uuid.New(),
		FirstName:    "Sarah",
		LastName:     "Chen",
		Email:        "sarah.chen@example.com",
		Role:         domain.RoleMember,
		CreatedAt:    time.Now(),
		LastActiveAt: time.Now(),
	}

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *dto.CreateUserDTO) bool {
		return d.Email == "sarah.chen@example.com" && d.Role == domain.RoleMember && d.Id != uuid.Nil
	})).Return(expectedUser, nil)

	resp, err := service.Register(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "sarah.chen@example.com", resp.User.Email)
	assert.Equal(t, domain.RoleMember, resp.User.Role)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_MissingFirstName(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, logger)

	req := validRegisterRequest()
	req.FirstName = ""

	resp, err := service.Register(context.Background(), req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Register_BadEmail(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, logger)

	req := validRegisterRequest()
	req.Email = "not-an-email"

	resp, err := service.Register(context.Background(), req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, logger)

	req := validRegisterRequest()
	req.Password = "weak"
	req.ConfirmPassword = "weak"

	resp, err := service.Register(context.Background(), req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Register_PasswordMismatch(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, logger)

	req := validRegisterRequest()
	req.ConfirmPassword = "Sup3rSecret2"

	resp, err := service.Register(context.Background(), req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Register_EmailExists(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, logger)

	req := validRegisterRequest()

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil, repository.ErrAlreadyExists)

	resp, err := service.Register(context.Background(), req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMAIL_EXISTS", domainErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Get_Success(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, logger)

	userId := uuid.New()
	expectedUser := &domain.User{
		Id:        userId,
		FirstName: "Sarah",
		LastName:  "Chen",
		Email:     "sarah.chen@example.com",
		Role:      domain.RoleMember,
	}

	mockRepo.On("GetById", mock.Anything, userId).Return(expectedUser, nil)

	resp, err := service.Get(context.Background(), &request.GetUserRequest{UserId: userId.String()})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, userId, resp.User.Id)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Get_NotFound(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, logger)

	mockRepo.On("GetById", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

	resp, err := service.Get(context.Background(), &request.GetUserRequest{UserId: uuid.New().String()})

	assert.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestUserService_SetRole_Success(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, logger)

	userId := uuid.New()
	expectedUser := &domain.User{
		Id:   userId,
		Role: domain.RoleAdmin,
	}

	mockRepo.On("SetRole", mock.Anything, mock.MatchedBy(func(d *dto.SetRoleDTO) bool {
		return d.UserId == userId && d.Role == domain.RoleAdmin
	})).Return(expectedUser, nil)

	resp, err := service.SetRole(context.Background(), &request.SetRoleRequest{
		UserId: userId.String(),
		Role:   "admin",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, resp.User.Role)
	mockRepo.AssertExpectations(t)
}

func TestUserService_SetRole_InvalidRole(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, logger)

	resp, err := service.SetRole(context.Background(), &request.SetRoleRequest{
		UserId: uuid.New().String(),
		Role:   "superuser",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	mockRepo.AssertNotCalled(t, "SetRole")
}

func TestUserService_Touch_NotFound(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, logger)

	mockRepo.On("Touch", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

	resp, err := service.Touch(context.Background(), &request.TouchRequest{UserId: uuid.New().String()})

	assert.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	mockRepo.AssertExpectations(t)
}
