package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedran77/missive/internal/domain"
)

func TestMessageHandler_Send(t *testing.T) {
	h := newHarness(t)
	aliceToken, aliceID := h.signup("alice")
	_, bobID := h.signup("bob")

	t.Run("stores the message", func(t *testing.T) {
		rec := h.send(aliceToken, bobID, "hello bob")

		require.Equal(t, http.StatusCreated, rec.Code)
		var msg domain.Message
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
		assert.Equal(t, "hello bob", msg.Content)
		assert.Equal(t, aliceID, msg.SenderID)
		assert.Equal(t, bobID, msg.RecipientID)
		assert.NotZero(t, msg.ID)
	})

	cases := []struct {
		name    string
		to      string
		content string
		status  int
		code    string
	}{
		{"to self", aliceID.String(), "hi me", http.StatusBadRequest, "SELF_MESSAGE"},
		{"to self with empty content", aliceID.String(), "", http.StatusBadRequest, "SELF_MESSAGE"},
		{"unknown recipient", uuid.NewString(), "hello?", http.StatusNotFound, "RECIPIENT_NOT_FOUND"},
		{"malformed recipient id", "not-a-uuid", "hello?", http.StatusNotFound, "RECIPIENT_NOT_FOUND"},
		{"blank content", bobID.String(), "   ", http.StatusBadRequest, "INVALID_CONTENT"},
		{"content too long", bobID.String(), strings.Repeat("x", testMaxLength+1), http.StatusBadRequest, "INVALID_CONTENT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := h.do(http.MethodPost, "/api/v1/messages/"+tc.to, aliceToken, map[string]string{"content": tc.content})

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, decodeError(t, rec).Error.Code)
		})
	}

	t.Run("requires a token", func(t *testing.T) {
		rec := h.send("", bobID, "anonymous")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMessageHandler_ListConversations(t *testing.T) {
	h := newHarness(t)
	aliceToken, aliceID := h.signup("alice")
	bobToken, bobID := h.signup("bob")
	_, carolID := h.signup("carol")

	require.Equal(t, http.StatusCreated, h.send(aliceToken, bobID, "first to bob").Code)
	require.Equal(t, http.StatusCreated, h.send(aliceToken, carolID, "to carol").Code)
	require.Equal(t, http.StatusCreated, h.send(bobToken, aliceID, "bob replies").Code)

	rec := h.do(http.MethodGet, "/api/v1/conversations", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Conversations []domain.ConversationSummary `json:"conversations"`
		User          domain.PublicUser            `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, aliceID, body.User.ID)
	require.Len(t, body.Conversations, 2)
	assert.Equal(t, bobID, body.Conversations[0].OtherUserID)
	assert.Equal(t, "bob replies", body.Conversations[0].Content)
	assert.Equal(t, carolID, body.Conversations[1].OtherUserID)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestMessageHandler_ListConversations_Limit(t *testing.T) {
	h := newHarness(t)
	token, _ := h.signup("hub")

	for i := 0; i < 12; i++ {
		_, id := h.signup(fmt.Sprintf("peer%c", 'a'+i))
		require.Equal(t, http.StatusCreated, h.send(token, id, "ping").Code)
	}

	var body struct {
		Conversations []domain.ConversationSummary `json:"conversations"`
	}

	rec := h.do(http.MethodGet, "/api/v1/conversations", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Conversations, 10)

	rec = h.do(http.MethodGet, "/api/v1/conversations?limit=3", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Conversations, 3)
}

func TestMessageHandler_ListConversations_Empty(t *testing.T) {
	h := newHarness(t)
	token, _ := h.signup("loner")

	rec := h.do(http.MethodGet, "/api/v1/conversations", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"conversations":[]`)
}

func TestMessageHandler_GetConversation(t *testing.T) {
	h := newHarness(t)
	aliceToken, aliceID := h.signup("alice")
	bobToken, bobID := h.signup("bob")
	_, carolID := h.signup("carol")

	require.Equal(t, http.StatusCreated, h.send(aliceToken, bobID, "one").Code)
	require.Equal(t, http.StatusCreated, h.send(bobToken, aliceID, "two").Code)
	require.Equal(t, http.StatusCreated, h.send(aliceToken, carolID, "elsewhere").Code)

	t.Run("newest first and scoped to the pair", func(t *testing.T) {
		rec := h.do(http.MethodGet, "/api/v1/conversations/"+bobID.String(), aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			User     domain.PublicUser `json:"user"`
			Messages []domain.Message  `json:"messages"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.Equal(t, aliceID, body.User.ID)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "two", body.Messages[0].Content)
		assert.Equal(t, "one", body.Messages[1].Content)
	})

	t.Run("bad user id", func(t *testing.T) {
		rec := h.do(http.MethodGet, "/api/v1/conversations/xyz", aliceToken, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Error.Code)
	})
}
