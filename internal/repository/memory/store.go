// Package memory is an in-process store for local development and tests.
// It enforces the same uniqueness and reference rules as the Postgres schema.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vedran77/missive/internal/domain"
	"github.com/vedran77/missive/internal/repository"
)

type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]domain.User
	messages []domain.Message
	nextID   int64
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		users: make(map[uuid.UUID]domain.User),
		now:   time.Now,
	}
}

func (s *Store) Users() *UserRepo       { return &UserRepo{s: s} }
func (s *Store) Messages() *MessageRepo { return &MessageRepo{s: s} }

type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		switch {
		case u.ID == user.ID:
			return errors.WithMessage(repository.ErrUniqueViolation, "users_pkey")
		case u.Username == user.Username:
			return errors.WithMessage(repository.ErrUniqueViolation, "users_username_key")
		case u.Email == user.Email:
			return errors.WithMessage(repository.ErrUniqueViolation, "users_email_key")
		}
	}

	user.CreatedAt = r.s.now()
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepo) SearchByUsername(_ context.Context, prefix string, excludeID uuid.UUID, limit int) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	prefix = strings.ToLower(prefix)
	var users []domain.User
	for _, u := range r.s.users {
		if u.ID != excludeID && strings.HasPrefix(strings.ToLower(u.Username), prefix) {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

type MessageRepo struct {
	s *Store
}

func (r *MessageRepo) Create(_ context.Context, msg *domain.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[msg.SenderID]; !ok {
		return errors.WithMessage(repository.ErrForeignKeyViolation, "messages_sender_id_fkey")
	}
	if _, ok := r.s.users[msg.RecipientID]; !ok {
		return errors.WithMessage(repository.ErrForeignKeyViolation, "message_recipients_user_id_fkey")
	}
	if msg.SenderID == msg.RecipientID {
		return errors.WithMessage(repository.ErrCheckViolation, "message_recipients_not_self")
	}

	r.s.nextID++
	msg.ID = r.s.nextID
	msg.CreatedAt = r.s.now()
	r.s.messages = append(r.s.messages, *msg)
	return nil
}

func (r *MessageRepo) ListConversations(_ context.Context, userID uuid.UUID, limit int) ([]domain.ConversationSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return domain.LatestConversations(userID, r.s.messages, limit), nil
}

func (r *MessageRepo) ListBetween(_ context.Context, userID, otherUserID uuid.UUID, limit int) ([]domain.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var messages []domain.Message
	for _, m := range r.s.messages {
		if (m.SenderID == userID && m.RecipientID == otherUserID) ||
			(m.SenderID == otherUserID && m.RecipientID == userID) {
			messages = append(messages, m)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return domain.Newer(messages[i], messages[j]) })
	if len(messages) > limit {
		messages = messages[:limit]
	}
	return messages, nil
}
