package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/vedran77/missive/internal/domain"
	"github.com/vedran77/missive/internal/repository"
	"github.com/vedran77/missive/pkg/apperror"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 50
)

type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	maxLength   int
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, maxLength int) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		maxLength:   maxLength,
	}
}

// Send stores a point-to-point message. Checks run in order: self, recipient,
// content.
func (s *MessageService) Send(ctx context.Context, senderID, recipientID uuid.UUID, content string) (*domain.Message, error) {
	if senderID == recipientID {
		return nil, ErrSelfMessage
	}

	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		return nil, apperror.Internal("looking up recipient", err)
	}
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	if strings.TrimSpace(content) == "" || utf8.RuneCountInString(content) > s.maxLength {
		return nil, ErrInvalidContent
	}

	msg := &domain.Message{
		Content:     content,
		SenderID:    senderID,
		RecipientID: recipientID,
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		// Recipient deleted between the lookup and the insert.
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrRecipientNotFound
		}
		if errors.Is(err, repository.ErrCheckViolation) {
			return nil, ErrSelfMessage
		}
		return nil, apperror.Internal("creating message", err)
	}

	return msg, nil
}

// ListConversations returns the newest message per counterpart, most recently
// active first.
func (s *MessageService) ListConversations(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ConversationSummary, error) {
	convs, err := s.messageRepo.ListConversations(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, apperror.Internal("listing conversations", err)
	}
	if convs == nil {
		convs = []domain.ConversationSummary{}
	}
	return convs, nil
}

// GetConversation returns messages exchanged with otherUserID, newest first.
func (s *MessageService) GetConversation(ctx context.Context, userID, otherUserID uuid.UUID, limit int) ([]domain.Message, error) {
	messages, err := s.messageRepo.ListBetween(ctx, userID, otherUserID, clampLimit(limit))
	if err != nil {
		return nil, apperror.Internal("listing messages", err)
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
