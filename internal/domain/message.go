package domain

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	SenderID  uuid.UUID `json:"sender_id"`
	CreatedAt time.Time `json:"created_at"`
	// Joined from message_recipients
	RecipientID uuid.UUID `json:"recipient_id"`
}

// ConversationSummary is the latest message exchanged with one counterpart.
type ConversationSummary struct {
	MessageID   int64     `json:"message_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	OtherUserID uuid.UUID `json:"other_user_id"`
}
