package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"divyaAPI/internal/contact"
	"divyaAPI/services"
)

type ContactHandler struct {
	contactService *services.ContactService
	logger         *zap.Logger
}

func NewContactHandler(contactService *services.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req contact.CreateContactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.contactService.Submit(ctx, &req)
	if err != nil {
		respondWithAppError(w, h.logger, err, "Failed to submit contact form")
		return
	}

	respondWithJSON(w, http.StatusOK, c)
}
