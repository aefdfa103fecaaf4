package service

import (
	"context"
	"strings"
	"sync"

	"github.com/vedran77/missive/internal/domain"
	"github.com/vedran77/missive/internal/repository"
	"github.com/vedran77/missive/pkg/apperror"
)

// LocalStrategy resolves a user from a username and password.
type LocalStrategy func(ctx context.Context, username, password string) (*domain.User, error)

// BearerStrategy resolves a user from a bearer token.
type BearerStrategy func(ctx context.Context, token string) (*domain.User, error)

// PasswordStrategy returns ErrInvalidCredentials for both an unknown username
// and a wrong password. An unknown username still pays for one hash check.
// The username is trimmed the same way Signup stores it.
func PasswordStrategy(users repository.UserRepository, hasher PasswordHasher) LocalStrategy {
	var once sync.Once
	var decoy string

	return func(ctx context.Context, username, password string) (*domain.User, error) {
		user, err := users.GetByUsername(ctx, strings.TrimSpace(username))
		if err != nil {
			return nil, apperror.Internal("looking up user", err)
		}
		if user == nil {
			once.Do(func() {
				decoy, _ = hasher.Hash("decoy-password-for-unknown-users")
			})
			hasher.Verify(password, decoy)
			return nil, ErrInvalidCredentials
		}

		if !hasher.Verify(password, user.PasswordHash) {
			return nil, ErrInvalidCredentials
		}
		return user, nil
	}
}

// TokenStrategy verifies the token and requires its subject to still exist.
func TokenStrategy(users repository.UserRepository, tokens *TokenService) BearerStrategy {
	return func(ctx context.Context, token string) (*domain.User, error) {
		userID, err := tokens.Verify(token)
		if err != nil {
			return nil, ErrUnauthorized
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			return nil, apperror.Internal("resolving token subject", err)
		}
		if user == nil {
			return nil, ErrUnauthorized
		}
		return user, nil
	}
}
