package handlers

import (
	"log/slog"
	"net/http"

	"planets-explorer/internal/planet"
	"planets-explorer/internal/shared/errors"
	"planets-explorer/internal/shared/request"
	"planets-explorer/internal/shared/response"
)

type PlanetHandler struct {
	service *planet.Service
}

func NewPlanetHandler(service *planet.Service) *PlanetHandler {
	return &PlanetHandler{service: service}
}

// Generate serves GET /api/planet/generate?seed=<int>. Without a seed the
// server picks one.
func (h *PlanetHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_planet")

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

	response.Success(w, http.StatusOK, h.service.Generate(seed))
}
