package handlers

import (
	"log/slog"
	"net/http"

	"planets-explorer/internal/galaxy"
	"planets-explorer/internal/shared/errors"
	"planets-explorer/internal/shared/request"
	"planets-explorer/internal/shared/response"
	"planets-explorer/internal/system"
)

type GalaxyHandler struct {
	service      *galaxy.Service
	defaultCount int
	maxCount     int
}

func NewGalaxyHandler(service *galaxy.Service, defaultCount, maxCount int) *GalaxyHandler {
	return &GalaxyHandler{
		service:      service,
		defaultCount: defaultCount,
		maxCount:     maxCount,
	}
}

// Generate serves GET /api/galaxy/generate?seed=<int>&count=<int>&planets=<bool>
// and responds with the array of systems.
func (h *GalaxyHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "generate_galaxy")

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
		seed = h.service.RandomSeed()
	}

	count, ok, err := request.NonNegativeInt(r, "count")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	if !ok {
		count = h.defaultCount
	}
	if count > h.maxCount {
		response.Error(w, r, logger, errors.Validationf("count must not exceed %d", h.maxCount))
		return
	}

	includePlanets, _, err := request.Bool(r, "planets")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	rec, err := h.service.Generate(ctx, seed, count, system.Options{IncludePlanets: includePlanets})
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to generate galaxy", err))
		return
	}

	response.Success(w, http.StatusOK, rec.Systems)
}
