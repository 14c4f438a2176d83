package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/securevault/securevault-go/internal/crypto"
	"github.com/securevault/securevault-go/internal/middleware"
	"github.com/securevault/securevault-go/internal/model"
	"github.com/securevault/securevault-go/internal/service"
)

// CipherHandler handles HTTP requests for text encryption.
type CipherHandler struct {
	service *service.CipherService
}

// NewCipherHandler creates a new CipherHandler.
func NewCipherHandler(svc *service.CipherService) *CipherHandler {
	return &CipherHandler{service: svc}
}

// HandleEncrypt handles POST /api/v1/encrypt requests.
func (h *CipherHandler) HandleEncrypt(w http.ResponseWriter, r *http.Request) {
	var req model.CipherRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	sessionID, _ := middleware.SessionIDFromContext(r.Context())
	resp, err := h.service.Encrypt(r.Context(), sessionID, req)
	if err != nil {
		writeCipherError(w, "encrypt", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDecrypt handles POST /api/v1/decrypt requests.
func (h *CipherHandler) HandleDecrypt(w http.ResponseWriter, r *http.Request) {
	var req model.CipherRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.Decrypt(r.Context(), req)
	if err != nil {
		writeCipherError(w, "decrypt", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeCipherError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, crypto.ErrTextRequired),
		errors.Is(err, crypto.ErrUnsupportedMethod),
		errors.Is(err, crypto.ErrUnsupportedFormat):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, crypto.ErrDecryptFailed):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse(err.Error()))
	default:
		slog.Error(op+" failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
