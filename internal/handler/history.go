package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/securevault/securevault-go/internal/middleware"
	"github.com/securevault/securevault-go/internal/model"
	"github.com/securevault/securevault-go/internal/service"
)

// HistoryHandler handles HTTP requests for the session history.
type HistoryHandler struct {
	service *service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(svc *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: svc}
}

// HandleList handles GET /api/v1/history requests.
func (h *HistoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.SessionIDFromContext(r.Context())

	items, err := h.service.List(r.Context(), sessionID)
	if err != nil {
		writeHistoryError(w, err)
		return
	}
	if items == nil {
		items = []model.HistoryItem{}
	}

	writeJSON(w, http.StatusOK, items)
}

// HandleClear handles DELETE /api/v1/history requests.
func (h *HistoryHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.SessionIDFromContext(r.Context())

	if err := h.service.Clear(r.Context(), sessionID); err != nil {
		writeHistoryError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeHistoryError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrSessionRequired) {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}
	slog.Error("history request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}
