package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"planets-explorer/internal/discovery"
	"planets-explorer/internal/middleware"
	"planets-explorer/internal/shared/errors"
	"planets-explorer/internal/shared/request"
	"planets-explorer/internal/shared/response"
)

const maxBodyBytes = 1 << 20

type DiscoveryHandler struct {
	service *discovery.Service
}

func NewDiscoveryHandler(service *discovery.Service) *DiscoveryHandler {
	return &DiscoveryHandler{service: service}
}

// Save serves POST /api/discoveries/save. A new discovery answers 201, a
// repeat answers 200 with the original record.
func (h *DiscoveryHandler) Save(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "save_discovery")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var req discovery.SaveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	explorer := ""
	if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
		explorer = claims.Username
	}

	d, created, err := h.service.Save(r.Context(), req, explorer)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(w, status, d)
}

// List serves GET /api/discoveries?type=&limit=.
func (h *DiscoveryHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "list_discoveries")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	limit, _, err := request.NonNegativeInt(r, "limit")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	entityType := discovery.EntityType(r.URL.Query().Get("type"))
	discoveries, err := h.service.List(r.Context(), entityType, limit)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, discoveries)
}

// Get serves GET /api/discoveries/{id} where id is the entity id.
func (h *DiscoveryHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_discovery")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	entityID := strings.TrimSpace(r.PathValue("id"))
	if entityID == "" {
		response.Error(w, r, logger, errors.Validation("discovery id is required"))
		return
	}

	d, err := h.service.Get(r.Context(), entityID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, d)
}
