package service

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vedran77/missive/internal/repository"
	"github.com/vedran77/missive/internal/repository/memory"
)

func testHasher() PasswordHasher {
	return &BcryptHasher{Cost: bcrypt.MinCost}
}

type authFixture struct {
	store  *memory.Store
	tokens *TokenService
	auth   *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	store := memory.NewStore()
	tokens := NewTokenService("test-secret", time.Hour)
	return &authFixture{
		store:  store,
		tokens: tokens,
		auth:   newAuthService(store.Users(), tokens),
	}
}

func newAuthService(users repository.UserRepository, tokens *TokenService) *AuthService {
	hasher := testHasher()
	return NewAuthService(users, hasher, tokens, PasswordStrategy(users, hasher))
}

func validSignup(username, email string) SignupInput {
	return SignupInput{
		FirstName:       "Test",
		LastName:        "User",
		Username:        username,
		Email:           email,
		Password:        "testPassword1!",
		ConfirmPassword: "testPassword1!",
	}
}
