package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/vedran77/missive/internal/service"
	"github.com/vedran77/missive/internal/transport/http/middleware"
	"github.com/vedran77/missive/pkg/apperror"
)

type MessageHandler struct {
	messageService *service.MessageService
	logger         *slog.Logger
}

func NewMessageHandler(messageService *service.MessageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{messageService: messageService, logger: logger}
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	// A malformed id cannot name an existing user.
	receiverID, err := uuid.Parse(r.PathValue("receiverId"))
	if err != nil {
		writeError(w, http.StatusNotFound, string(apperror.CodeRecipientNotFound), "Receiver not found")
		return
	}

	var input struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	msg, err := h.messageService.Send(r.Context(), user.ID, receiverID, input.Content)
	if err != nil {
		writeServiceError(w, h.logger, "send message", err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	convs, err := h.messageService.ListConversations(r.Context(), user.ID, queryLimit(r))
	if err != nil {
		writeServiceError(w, h.logger, "list conversations", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"conversations": convs,
		"user":          user.Public(),
	})
}

func (h *MessageHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	otherID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	messages, err := h.messageService.GetConversation(r.Context(), user.ID, otherID, queryLimit(r))
	if err != nil {
		writeServiceError(w, h.logger, "get conversation", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":     user.Public(),
		"messages": messages,
	})
}
