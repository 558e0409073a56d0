package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/transport/dto/request"
	"github.com/taskflow/backend/internal/transport/dto/response"
)

type ProjectService interface {
	Create(ctx context.Context, req *request.CreateProjectRequest) (*response.ProjectResponse, error)
	Get(ctx context.Context, req *request.GetProjectRequest) (*response.ProjectResponse, error)
	List(ctx context.Context, req *request.ListProjectsRequest) (*response.ListProjectsResponse, error)
	Update(ctx context.Context, req *request.UpdateProjectRequest) (*response.UpdateProjectResponse, error)
	Delete(ctx context.Context, req *request.DeleteProjectRequest) (*response.DeleteProjectResponse, error)
	AddMember(ctx context.Context, req *request.AddMemberRequest) (*response.AddMemberResponse, error)
	RemoveMember(ctx context.Context, req *request.RemoveMemberRequest) (*response.RemoveMemberResponse, error)
}

type ProjectHandler struct {
	svc ProjectService
	log *zap.Logger
}

func NewProjectHandler(svc ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		svc: svc,
		log: log,
	}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.log.Info("createProject request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to create project",
			zap.String("owner_id", req.OwnerId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	h.log.Info("project created", zap.String("project_id", resp.Project.Id.String()))

	WriteJSON(w, http.StatusCreated, resp)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	req := request.GetProjectRequest{
		ProjectId: r.URL.Query().Get("project_id"),
	}

	resp, err := h.svc.Get(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to get project",
			zap.String("project_id", req.ProjectId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	req := request.ListProjectsRequest{
		UserId: r.URL.Query().Get("user_id"),
	}

	resp, err := h.svc.List(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to list projects",
			zap.String("user_id", req.UserId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.log.Info("updateProject request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.Update(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to update project",
			zap.String("project_id", req.ProjectId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.log.Info("deleteProject request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.DeleteProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.Delete(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to delete project",
			zap.String("project_id", req.ProjectId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *ProjectHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	h.log.Info("addMember request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.AddMember(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to add project member",
			zap.String("project_id", req.ProjectId),
			zap.String("user_id", req.UserId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusCreated, resp)
}

func (h *ProjectHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	h.log.Info("removeMember request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.RemoveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.RemoveMember(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to remove project member",
			zap.String("project_id", req.ProjectId),
			zap.String("user_id", req.UserId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
