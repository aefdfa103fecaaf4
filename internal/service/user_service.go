package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/vedran77/missive/internal/domain"
	"github.com/vedran77/missive/internal/repository"
	"github.com/vedran77/missive/pkg/apperror"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Search finds other users whose username starts with query.
func (s *UserService) Search(ctx context.Context, userID uuid.UUID, query string, limit int) ([]domain.PublicUser, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.PublicUser{}, nil
	}

	users, err := s.userRepo.SearchByUsername(ctx, query, userID, clampLimit(limit))
	if err != nil {
		return nil, apperror.Internal("searching users", err)
	}

	result := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		result = append(result, users[i].Public())
	}
	return result, nil
}
