package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/missive/internal/domain"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vedran77/missive/internal/repository UserRepository,MessageRepository

var (
	// ErrUniqueViolation is returned when an insert collides with a unique constraint.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrForeignKeyViolation is returned when an insert references a missing row.
	ErrForeignKeyViolation = errors.New("foreign key violation")
	// ErrCheckViolation is returned when a row fails a check constraint.
	ErrCheckViolation = errors.New("check constraint violation")
)

// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	SearchByUsername(ctx context.Context, prefix string, excludeID uuid.UUID, limit int) ([]domain.User, error)
}

type MessageRepository interface {
	// Create stores the message and its recipient link atomically and fills
	// in ID and CreatedAt.
	Create(ctx context.Context, msg *domain.Message) error
	ListConversations(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ConversationSummary, error)
	ListBetween(ctx context.Context, userID, otherUserID uuid.UUID, limit int) ([]domain.Message, error)
}
