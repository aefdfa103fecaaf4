package handlers

import "net/http"

// NewRouter registers every route. Routes under auth require a bearer token.
func NewRouter(auth func(http.Handler) http.Handler, authHandler *AuthHandler, messageHandler *MessageHandler, userHandler *UserHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("POST /api/v1/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	// Protected - Auth
	mux.Handle("GET /api/v1/auth/verify", auth(http.HandlerFunc(authHandler.Verify)))

	// Protected - Messages
	mux.Handle("POST /api/v1/messages/{receiverId}", auth(http.HandlerFunc(messageHandler.Send)))
	mux.Handle("GET /api/v1/conversations", auth(http.HandlerFunc(messageHandler.ListConversations)))
	mux.Handle("GET /api/v1/conversations/{userId}", auth(http.HandlerFunc(messageHandler.GetConversation)))

	// Protected - Users
	mux.Handle("GET /api/v1/users", auth(http.HandlerFunc(userHandler.Search)))

	return mux
}
