package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/vedran77/missive/internal/domain"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

// Create inserts the message and its recipient link in one transaction.
func (r *MessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO messages (content, sender_id)
			VALUES ($1, $2)
			RETURNING id, created_at`,
			msg.Content, msg.SenderID,
		).Scan(&msg.ID, &msg.CreatedAt)
		if err != nil {
			return errors.Wrap(mapError(err), "messageRepo.Create.InsertMessage")
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO message_recipients (message_id, sender_id, user_id) VALUES ($1, $2, $3)`,
			msg.ID, msg.SenderID, msg.RecipientID,
		)
		if err != nil {
			return errors.Wrap(mapError(err), "messageRepo.Create.InsertRecipient")
		}
		return nil
	})
}

// ListConversations keeps the newest message per counterpart using a window
// function. Ties on created_at go to the higher id.
func (r *MessageRepo) ListConversations(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ConversationSummary, error) {
	query := `
		WITH exchanged AS (
			SELECT m.id, m.content, m.created_at, m.sender_id, mr.user_id AS recipient_id,
				CASE WHEN m.sender_id = $1 THEN mr.user_id ELSE m.sender_id END AS other_user_id
			FROM messages m
			JOIN message_recipients mr ON mr.message_id = m.id
			WHERE m.sender_id = $1 OR mr.user_id = $1
		), ranked AS (
			SELECT e.*,
				ROW_NUMBER() OVER (PARTITION BY e.other_user_id ORDER BY e.created_at DESC, e.id DESC) AS rn
			FROM exchanged e
		)
		SELECT id, content, created_at, sender_id, recipient_id, other_user_id
		FROM ranked
		WHERE rn = 1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListConversations")
	}
	defer rows.Close()

	var convs []domain.ConversationSummary
	for rows.Next() {
		var c domain.ConversationSummary
		if err := rows.Scan(
			&c.MessageID, &c.Content, &c.CreatedAt,
			&c.SenderID, &c.RecipientID, &c.OtherUserID,
		); err != nil {
			return nil, errors.Wrap(err, "messageRepo.ListConversations.Scan")
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

func (r *MessageRepo) ListBetween(ctx context.Context, userID, otherUserID uuid.UUID, limit int) ([]domain.Message, error) {
	query := `
		SELECT m.id, m.content, m.sender_id, m.created_at, mr.user_id
		FROM messages m
		JOIN message_recipients mr ON mr.message_id = m.id
		WHERE (m.sender_id = $1 AND mr.user_id = $2)
			OR (m.sender_id = $2 AND mr.user_id = $1)
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, userID, otherUserID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListBetween")
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID, &msg.Content, &msg.SenderID, &msg.CreatedAt, &msg.RecipientID,
		); err != nil {
			return nil, errors.Wrap(err, "messageRepo.ListBetween.Scan")
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
