package handlers

import (
	"log/slog"
	"net/http"

	"planets-explorer/internal/galaxy"
	"planets-explorer/internal/shared/errors"
	"planets-explorer/internal/shared/request"
	"planets-explorer/internal/shared/response"
)

type SystemHandler struct {
	service *galaxy.Service
}

func NewSystemHandler(service *galaxy.Service) *SystemHandler {
	return &SystemHandler{service: service}
}

// Generate serves GET /api/system/generate?seed=<int>&index=<int>. The
// system comes back with its full planet list.
func (h *SystemHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "generate_system")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	seed, ok, err := request.Int64(r, "seed")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	if !ok {
		response.Error(w, r, logger, errors.Validation("seed is required"))
		return
	}

	index, _, err := request.NonNegativeInt(r, "index")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	rec, err := h.service.System(ctx, seed, index)
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to generate system", err))
		return
	}

	response.Success(w, http.StatusOK, rec)
}
