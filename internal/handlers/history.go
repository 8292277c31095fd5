package handlers

import (
	"context"
	"net/http"

	"studymate-backend/internal/logging"
	"studymate-backend/internal/middleware"
	"studymate-backend/internal/models"
)

type historyService interface {
	List(ctx context.Context, owner string) ([]string, error)
	Clear(ctx context.Context, owner string) error
}

type HistoryHandler struct {
	history historyService
}

func NewHistoryHandler(history historyService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.history.List(r.Context(), middleware.GetClientID(r.Context()))
	if err != nil {
		logging.WithContext(r.Context()).WithError(err).Error("Failed to list history")
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load history", r))
		return
	}
	writeJSON(w, http.StatusOK, models.HistoryResponse{Topics: topics})
}

func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.history.Clear(r.Context(), middleware.GetClientID(r.Context())); err != nil {
		logging.WithContext(r.Context()).WithError(err).Error("Failed to clear history")
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to clear history", r))
		return
	}
	writeJSON(w, http.StatusOK, models.HistoryResponse{Topics: []string{}})
}
