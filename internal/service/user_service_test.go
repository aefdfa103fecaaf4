package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedran77/missive/internal/domain"
	"github.com/vedran77/missive/internal/repository/mocks"
)

func TestUserService_Search(t *testing.T) {
	ctx := context.Background()
	me := uuid.New()

	t.Run("blank query skips storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewUserService(mocks.NewMockUserRepository(ctrl))

		users, err := svc.Search(ctx, me, "   ", 10)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("returns public projections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockUserRepository(ctrl)
		svc := NewUserService(mockRepo)

		found := []domain.User{{ID: uuid.New(), Username: "anna", PasswordHash: "hash"}}
		mockRepo.EXPECT().SearchByUsername(gomock.Any(), "an", me, DefaultListLimit).Return(found, nil)

		users, err := svc.Search(ctx, me, " an ", 0)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, found[0].Public(), users[0])
	})
}
