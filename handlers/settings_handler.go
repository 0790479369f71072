package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/settings"
	"divyaAPI/services"
)

type SettingsHandler struct {
	streakService *services.StreakService
	logger        *zap.Logger
}

func NewSettingsHandler(streakService *services.StreakService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		streakService: streakService,
		logger:        logger,
	}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	s, err := h.streakService.GetSettings(ctx)
	if err != nil {
		respondWithAppError(w, h.logger, err, "Failed to fetch settings")
		return
	}

	respondWithJSON(w, http.StatusOK, s)
}

func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req settings.UpdateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s, err := h.streakService.UpdateSettings(ctx, &req)
	if err != nil {
		respondWithAppError(w, h.logger, err, "Failed to update settings")
		return
	}

	respondWithJSON(w, http.StatusOK, s)
}

// CompleteDay advances the streak when every task is done. The body always
// carries the settings and the outcome; a clock skew answers 409.
func (h *SettingsHandler) CompleteDay(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.streakService.CompleteDay(ctx)
	if errors.Is(err, apperr.ErrClockSkew) {
		respondWithJSON(w, http.StatusConflict, map[string]interface{}{
			"error":    "Last completion date is in the future",
			"settings": result.Settings,
			"outcome":  result.Outcome,
		})
		return
	}
	if err != nil {
		respondWithAppError(w, h.logger, err, "Failed to update streak")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
