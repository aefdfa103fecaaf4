package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedran77/missive/internal/domain"
	"github.com/vedran77/missive/internal/repository"
)

// fixedClock returns the same instant on every call so ties are exercised.
func fixedClock(s *Store, at time.Time) {
	s.now = func() time.Time { return at }
}

func addUser(t *testing.T, s *Store, username string) *domain.User {
	t.Helper()
	u := &domain.User{ID: uuid.New(), Username: username, Email: username + "@example.com"}
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}

func TestUserRepo_Uniqueness(t *testing.T) {
	s := NewStore()
	addUser(t, s, "alice")

	err := s.Users().Create(context.Background(), &domain.User{ID: uuid.New(), Username: "alice", Email: "x@example.com"})
	assert.ErrorIs(t, err, repository.ErrUniqueViolation)

	err = s.Users().Create(context.Background(), &domain.User{ID: uuid.New(), Username: "alice2", Email: "alice@example.com"})
	assert.ErrorIs(t, err, repository.ErrUniqueViolation)
}

func TestUserRepo_Lookups(t *testing.T) {
	s := NewStore()
	alice := addUser(t, s, "alice")
	addUser(t, s, "alfred")
	addUser(t, s, "bob")

	got, err := s.Users().GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	missing, err := s.Users().GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	found, err := s.Users().SearchByUsername(context.Background(), "AL", alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "alfred", found[0].Username)
}

func TestMessageRepo_CreateRequiresKnownUsers(t *testing.T) {
	s := NewStore()
	alice := addUser(t, s, "alice")

	err := s.Messages().Create(context.Background(), &domain.Message{SenderID: alice.ID, RecipientID: uuid.New(), Content: "hi"})
	assert.ErrorIs(t, err, repository.ErrForeignKeyViolation)
	assert.Empty(t, s.messages)
}

func TestMessageRepo_CreateRejectsSelfLink(t *testing.T) {
	s := NewStore()
	alice := addUser(t, s, "alice")

	err := s.Messages().Create(context.Background(), &domain.Message{SenderID: alice.ID, RecipientID: alice.ID, Content: "note to self"})
	assert.ErrorIs(t, err, repository.ErrCheckViolation)
	assert.Empty(t, s.messages)
}

func TestMessageRepo_SameTimestampTieBreak(t *testing.T) {
	s := NewStore()
	me := addUser(t, s, "me")
	a := addUser(t, s, "a")
	b := addUser(t, s, "b")
	fixedClock(s, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	repo := s.Messages()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &domain.Message{SenderID: a.ID, RecipientID: me.ID, Content: "a1"}))
	require.NoError(t, repo.Create(ctx, &domain.Message{SenderID: b.ID, RecipientID: me.ID, Content: "b1"}))
	require.NoError(t, repo.Create(ctx, &domain.Message{SenderID: me.ID, RecipientID: a.ID, Content: "a2"}))

	convs, err := repo.ListConversations(ctx, me.ID, 10)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, "a2", convs[0].Content)
	assert.Equal(t, a.ID, convs[0].OtherUserID)
	assert.Equal(t, "b1", convs[1].Content)

	between, err := repo.ListBetween(ctx, me.ID, a.ID, 10)
	require.NoError(t, err)
	require.Len(t, between, 2)
	assert.Equal(t, "a2", between[0].Content)
	assert.Equal(t, "a1", between[1].Content)
}

func TestMessageRepo_ListBetweenLimit(t *testing.T) {
	s := NewStore()
	me := addUser(t, s, "me")
	other := addUser(t, s, "other")
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		require.NoError(t, s.Messages().Create(ctx, &domain.Message{SenderID: me.ID, RecipientID: other.ID, Content: fmt.Sprintf("m%d", i)}))
	}

	msgs, err := s.Messages().ListBetween(ctx, other.ID, me.ID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 10)
	assert.Equal(t, "m14", msgs[0].Content)
}
