package handlers

import (
	"log/slog"
	"net/http"

	"github.com/vedran77/missive/internal/service"
	"github.com/vedran77/missive/internal/transport/http/middleware"
)

type UserHandler struct {
	userService *service.UserService
	logger      *slog.Logger
}

func NewUserHandler(userService *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	users, err := h.userService.Search(r.Context(), user.ID, r.URL.Query().Get("search"), queryLimit(r))
	if err != nil {
		writeServiceError(w, h.logger, "search users", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}
