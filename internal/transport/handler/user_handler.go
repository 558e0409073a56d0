package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/transport/dto/request"
	"github.com/taskflow/backend/internal/transport/dto/response"
)

type UserService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Get(ctx context.Context, req *request.GetUserRequest) (*response.GetUserResponse, error)
	SetRole(ctx context.Context, req *request.SetRoleRequest) (*response.SetRoleResponse, error)
	Touch(ctx context.Context, req *request.TouchRequest) (*response.TouchResponse, error)
}

type UserHandler struct {
	svc UserService
	log *zap.Logger
}

func NewUserHandler(svc UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		svc: svc,
		log: log,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.log.Info("register request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.Register(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to register user",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	h.log.Info("user registered", zap.String("user_id", resp.User.Id.String()))

	WriteJSON(w, http.StatusCreated, resp)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	req := request.GetUserRequest{
		UserId: r.URL.Query().Get("user_id"),
	}

	resp, err := h.svc.Get(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to get user",
			zap.String("user_id", req.UserId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	h.log.Info("setRole request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.SetRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.SetRole(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to set user role",
			zap.String("user_id", req.UserId),
			zap.String("role", req.Role),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) Touch(w http.ResponseWriter, r *http.Request) {
	var req request.TouchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.Touch(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to touch user activity",
			zap.String("user_id", req.UserId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
