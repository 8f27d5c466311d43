package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"planets-explorer/internal/shared/response"
)

const healthCheckTimeout = 2 * time.Second

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type StatusReporter interface {
	Status(ctx context.Context) string
}

type HealthHandler struct {
	db    Pinger
	cache StatusReporter
}

// NewHealthHandler reports on db and cache. cache may be nil.
func NewHealthHandler(db Pinger, cache StatusReporter) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	dbStatus := "disconnected"
	if err := h.db.PingContext(ctx); err == nil {
		dbStatus = "connected"
	} else {
		logger.Warn("Database ping failed", "error", err)
	}

	cacheStatus := "memory"
	if h.cache != nil {
		cacheStatus = h.cache.Status(ctx)
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  dbStatus,
		Cache:     cacheStatus,
	}

	response.Success(w, http.StatusOK, resp)
}
