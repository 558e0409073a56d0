package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/transport/dto/request"
	"github.com/taskflow/backend/internal/transport/dto/response"
)

type CommentService interface {
	Add(ctx context.Context, req *request.AddCommentRequest) (*response.CommentResponse, error)
	List(ctx context.Context, req *request.ListCommentsRequest) (*response.ListCommentsResponse, error)
	Delete(ctx context.Context, req *request.DeleteCommentRequest) (*response.DeleteCommentResponse, error)
}

type CommentHandler struct {
	svc CommentService
	log *zap.Logger
}

func NewCommentHandler(svc CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		svc: svc,
		log: log,
	}
}

func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	h.log.Info("addComment request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.Add(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to add comment",
			zap.String("task_id", req.TaskId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusCreated, resp)
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	req := request.ListCommentsRequest{
		TaskId: r.URL.Query().Get("task_id"),
	}

	resp, err := h.svc.List(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to list comments",
			zap.String("task_id", req.TaskId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.log.Info("deleteComment request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.DeleteCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.Delete(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to delete comment",
			zap.String("comment_id", req.CommentId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
