package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vedran77/missive/internal/domain"
	"github.com/vedran77/missive/internal/service"
)

type contextKey string

const UserKey contextKey = "user"

// Auth resolves the bearer token through the strategy and stores the user in
// the request context.
func Auth(bearer service.BearerStrategy, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "Missing or invalid token")
				return
			}

			tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

			user, err := bearer(r.Context(), tokenStr)
			if err != nil {
				if !errors.Is(err, service.ErrUnauthorized) {
					logger.Error("resolving bearer token", "err", err)
				}
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser extracts the authenticated user from request context
func GetUser(ctx context.Context) *domain.User {
	user, _ := ctx.Value(UserKey).(*domain.User)
	return user
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"` + message + `"}}`))
}
