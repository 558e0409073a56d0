package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/transport/dto/request"
	"github.com/taskflow/backend/internal/transport/dto/response"
)

type TaskService interface {
	Create(ctx context.Context, req *request.CreateTaskRequest) (*response.TaskResponse, error)
	Get(ctx context.Context, req *request.GetTaskRequest) (*response.TaskDetailResponse, error)
	List(ctx context.Context, req *request.ListTasksRequest) (*response.ListTasksResponse, error)
	Update(ctx context.Context, req *request.UpdateTaskRequest) (*response.TaskResponse, error)
	SetStatus(ctx context.Context, req *request.SetStatusRequest) (*response.TaskResponse, error)
	Assign(ctx context.Context, req *request.AssignTaskRequest) (*response.TaskResponse, error)
	Delete(ctx context.Context, req *request.DeleteTaskRequest) (*response.DeleteTaskResponse, error)
}

type TaskHandler struct {
	svc TaskService
	log *zap.Logger
}

func NewTaskHandler(svc TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{
		svc: svc,
		log: log,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.log.Info("createTask request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to create task",
			zap.String("project_id", req.ProjectId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	h.log.Info("task created", zap.String("task_id", resp.Task.Id.String()))

	WriteJSON(w, http.StatusCreated, resp)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	req := request.GetTaskRequest{
		TaskId: r.URL.Query().Get("task_id"),
	}

	resp, err := h.svc.Get(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to get task",
			zap.String("task_id", req.TaskId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.ListTasksRequest{
		ProjectId:  query.Get("project_id"),
		Status:     query.Get("status"),
		Priority:   query.Get("priority"),
		AssigneeId: query.Get("assignee_id"),
	}

	resp, err := h.svc.List(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to list tasks",
			zap.String("project_id", req.ProjectId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.log.Info("updateTask request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.Update(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to update task",
			zap.String("task_id", req.TaskId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *TaskHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Info("setStatus request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.SetStatus(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to set task status",
			zap.String("task_id", req.TaskId),
			zap.String("status", req.Status),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	h.log.Info("task status updated",
		zap.String("task_id", req.TaskId),
		zap.String("status", string(resp.Task.Status)),
	)

	WriteJSON(w, http.StatusOK, resp)
}

func (h *TaskHandler) Assign(w http.ResponseWriter, r *http.Request) {
	h.log.Info("assignTask request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.AssignTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.Assign(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to assign task",
			zap.String("task_id", req.TaskId),
			zap.String("assignee_id", req.AssigneeId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.log.Info("deleteTask request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.DeleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.Delete(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to delete task",
			zap.String("task_id", req.TaskId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
