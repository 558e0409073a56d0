package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/transport/dto/response"
)

type StatsService interface {
	GetStats(ctx context.Context) (*response.StatsResponse, error)
}

type StatsHandler struct {
	svc StatsService
	log *zap.Logger
}

func NewStatsHandler(svc StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		svc: svc,
		log: log,
	}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.log.Info("getStats request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	resp, err := h.svc.GetStats(r.Context())
	if err != nil {
		h.log.Error("failed to get dashboard stats",
			zap.Error(err),
		)
		status, errResp := HandleError(err)
		WriteError(w, status, errResp)
		return
	}

	h.log.Info("dashboard stats retrieved",
		zap.Int("projects_count", len(resp.Projects)),
		zap.Int("users_count", len(resp.Users)),
	)

	WriteJSON(w, http.StatusOK, resp)
}
