package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/securevault/securevault-go/internal/crypto"
	"github.com/securevault/securevault-go/internal/model"
)

// SessionHandler opens anonymous history sessions.
type SessionHandler struct {
	secret string
	expiry time.Duration
}

// NewSessionHandler creates a new SessionHandler signing tokens with secret.
func NewSessionHandler(secret string, expiry time.Duration) *SessionHandler {
	return &SessionHandler{secret: secret, expiry: expiry}
}

// HandleCreate handles POST /api/v1/session requests.
func (h *SessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sessionID := uuid.NewString()

	token, expiresAt, err := crypto.GenerateSessionToken(sessionID, h.secret, h.expiry)
	if err != nil {
		slog.Error("signing session token failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, model.SessionResponse{
		Token:     token,
		SessionID: sessionID,
		ExpiresAt: expiresAt.UTC(),
	})
}
