package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store  pinger
	logger *zap.Logger
}

func NewHealthHandler(store pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", zap.Error(err))
		respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  "database connection failed",
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "divya-api"})
}
