package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/domain"
	"github.com/taskflow/backend/internal/transport/dto/request"
	"github.com/taskflow/backend/internal/transport/dto/response"
	"github.com/taskflow/backend/internal/usecase/service"
)

// MockUserService mocks the service for handler tests
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.RegisterResponse), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, req *request.GetUserRequest) (*response.GetUserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.GetUserResponse), args.Error(1)
}

func (m *MockUserService) SetRole(ctx context.Context, req *request.SetRoleRequest) (*response.SetRoleResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.SetRoleResponse), args.Error(1)
}

func (m *MockUserService) Touch(ctx context.Context, req *request.TouchRequest) (*response.TouchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TouchResponse), args.Error(1)
}

func TestUserHandler_Register_Success(t *testing.T) {
	logger := zap.NewNop()
	mockSvc := new(MockUserService)
	handler := NewUserHandler(mockSvc, logger)

	userId := uuid.New()
	mockSvc.On("Register", mock.Anything, mock.MatchedBy(func(req *request.RegisterRequest) bool {
		return req.Email == "sarah.chen@example.com"
	})).Return(&response.RegisterResponse{
		User: &domain.User{
			Id:    userId,
			Email: "sarah.chen@example.com",
			Role:  domain.RoleMember,
		},
	}, nil)

	body, _ := json.Marshal(map[string]string{
		"first_name":       "Sarah",
		"last_name":        "Chen",
		"email":            "sarah.chen@example.com",
		"password":         "Sup3rSecret",
		"confirm_password": "Sup3rSecret",
	})

	req := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp response.RegisterResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, userId, resp.User.Id)
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_Register_MalformedBody(t *testing.T) {
	logger := zap.NewNop()
	mockSvc := new(MockUserService)
	handler := NewUserHandler(mockSvc, logger)

	req := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	assert.NoError(t, err)
	assert.Equal(t, "VALIDATION_FAILED", errResp.Error.Code)
	mockSvc.AssertNotCalled(t, "Register")
}

func TestUserHandler_Register_EmailExists(t *testing.T) {
	logger := zap.NewNop()
	mockSvc := new(MockUserService)
	handler := NewUserHandler(mockSvc, logger)

	mockSvc.On("Register", mock.Anything, mock.Anything).
		Return(nil, service.WrapError(service.ErrEmailExists, nil))

	body, _ := json.Marshal(map[string]string{"email": "sarah.chen@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var errResp ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	assert.NoError(t, err)
	assert.Equal(t, "EMAIL_EXISTS", errResp.Error.Code)
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_Get_Success(t *testing.T) {
	logger := zap.NewNop()
	mockSvc := new(MockUserService)
	handler := NewUserHandler(mockSvc, logger)

	userId := uuid.New()
	mockSvc.On("Get", mock.Anything, mock.MatchedBy(func(req *request.GetUserRequest) bool {
		return req.UserId == userId.String()
	})).Return(&response.GetUserResponse{
		User: &domain.User{Id: userId, Email: "sarah.chen@example.com"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/get?user_id="+userId.String(), nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	logger := zap.NewNop()
	mockSvc := new(MockUserService)
	handler := NewUserHandler(mockSvc, logger)

	mockSvc.On("Get", mock.Anything, mock.Anything).
		Return(nil, service.WrapError(service.ErrUserNotFound, nil))

	req := httptest.NewRequest(http.MethodGet, "/users/get?user_id="+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errResp ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	assert.NoError(t, err)
	assert.Equal(t, "NOT_FOUND", errResp.Error.Code)
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_SetRole_UnknownError(t *testing.T) {
	logger := zap.NewNop()
	mockSvc := new(MockUserService)
	handler := NewUserHandler(mockSvc, logger)

	mockSvc.On("SetRole", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	body, _ := json.Marshal(map[string]string{"user_id": uuid.New().String(), "role": "admin"})
	req := httptest.NewRequest(http.MethodPost, "/users/setRole", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SetRole(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var errResp ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	assert.NoError(t, err)
	assert.Equal(t, "INTERNAL_ERROR", errResp.Error.Code)
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_Touch_Success(t *testing.T) {
	logger := zap.NewNop()
	mockSvc := new(MockUserService)
	handler := NewUserHandler(mockSvc, logger)

	userId := uuid.New()
	mockSvc.On("Touch", mock.Anything, mock.MatchedBy(func(req *request.TouchRequest) bool {
		return req.UserId == userId.String()
	})).Return(&response.TouchResponse{
		User: &domain.User{Id: userId},
	}, nil)

	body, _ := json.Marshal(map[string]string{"user_id": userId.String()})
	req := httptest.NewRequest(http.MethodPost, "/users/touch", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Touch(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}
