package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/transport/dto/request"
	"github.com/taskflow/backend/internal/transport/dto/response"
)

type AttachmentService interface {
	Add(ctx context.Context, req *request.AddAttachmentRequest) (*response.AttachmentResponse, error)
	List(ctx context.Context, req *request.ListAttachmentsRequest) (*response.ListAttachmentsResponse, error)
	Delete(ctx context.Context, req *request.DeleteAttachmentRequest) (*response.DeleteAttachmentResponse, error)
}

type AttachmentHandler struct {
	svc AttachmentService
	log *zap.Logger
}

func NewAttachmentHandler(svc AttachmentService, log *zap.Logger) *AttachmentHandler {
	return &AttachmentHandler{
		svc: svc,
		log: log,
	}
}

func (h *AttachmentHandler) Add(w http.ResponseWriter, r *http.Request) {
	h.log.Info("addAttachment request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.AddAttachmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.Add(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to add attachment",
			zap.String("task_id", req.TaskId),
			zap.String("file_name", req.FileName),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusCreated, resp)
}

func (h *AttachmentHandler) List(w http.ResponseWriter, r *http.Request) {
	req := request.ListAttachmentsRequest{
		TaskId: r.URL.Query().Get("task_id"),
	}

	resp, err := h.svc.List(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to list attachments",
			zap.String("task_id", req.TaskId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.log.Info("deleteAttachment request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.DeleteAttachmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode request body", zap.Error(err))
		status, errResp := HandleError(WrapDecodeError(err))
		WriteError(w, status, errResp)
		return
	}

	resp, err := h.svc.Delete(r.Context(), &req)
	if err != nil {
		h.log.Error("failed to delete attachment",
			zap.String("attachment_id", req.AttachmentId),
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
