package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/chat"
	"divyaAPI/services"
)

type ChatHandler struct {
	chatService *services.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *services.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Ask answers a question. The chat service bounds the model call itself, so
// no extra timeout is applied here. When the model fails the client still
// gets a renderable answer, with status 500 and an "error" field.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req chat.AskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	answer, err := h.chatService.Ask(r.Context(), &req)
	switch {
	case err == nil:
		respondWithJSON(w, http.StatusOK, answer)
	case errors.Is(err, apperr.ErrValidation):
		respondWithError(w, http.StatusBadRequest, "Message is required")
	default:
		respondWithJSON(w, http.StatusInternalServerError, chat.FallbackResponse{
			Error:  "Failed to generate response",
			Answer: answer,
		})
	}
}
