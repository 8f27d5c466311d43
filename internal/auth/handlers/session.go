package handlers

import (
	"log/slog"
	"net/http"

	"planets-explorer/internal/middleware"
	"planets-explorer/internal/shared/config"
	"planets-explorer/internal/shared/cookies"
	"planets-explorer/internal/shared/errors"
	"planets-explorer/internal/shared/response"
)

type SessionHandler struct {
	cfg *config.Config
}

func NewSessionHandler(cfg *config.Config) *SessionHandler {
	return &SessionHandler{cfg: cfg}
}

// Logout serves POST /auth/logout.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "logout")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	cookies.ClearAuthCookie(w, h.cfg)
	response.Success(w, http.StatusOK, map[string]bool{"success": true})
}

// Me serves GET /api/explorers/me behind the JWT middleware.
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "current_explorer")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	response.Success(w, http.StatusOK, claims.Explorer())
}
