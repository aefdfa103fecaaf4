package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/vedran77/missive/internal/domain"
	"github.com/vedran77/missive/internal/repository"
	"github.com/vedran77/missive/pkg/apperror"
)

type AuthService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   *TokenService
	local    LocalStrategy
}

func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, tokens *TokenService, local LocalStrategy) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		local:    local,
	}
}

type SignupInput struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResponse, error) {
	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	username := strings.TrimSpace(input.Username)
	email := NormalizeEmail(input.Email)

	// Advisory only; the unique constraints decide concurrent races below.
	taken, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, apperror.Internal("checking existing credentials", err)
	}
	if taken {
		return nil, ErrDuplicateCredential
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal("hashing password", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, ErrDuplicateCredential
		}
		return nil, apperror.Internal("creating user", err)
	}

	return s.respond(user)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	user, err := s.local(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	return s.respond(user)
}

func (s *AuthService) respond(user *domain.User) (*AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.Internal("generating token", err)
	}
	return &AuthResponse{Token: token, User: user.Public()}, nil
}
