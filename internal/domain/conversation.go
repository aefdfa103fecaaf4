package domain

import (
	"sort"

	"github.com/google/uuid"
)

// Newer reports whether a sorts before b in recency order:
// created_at descending, then id descending.
func Newer(a, b Message) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// LatestConversations reduces a user's message history to one summary per
// counterpart, newest first, capped at limit. Messages not involving userID
// are ignored.
func LatestConversations(userID uuid.UUID, messages []Message, limit int) []ConversationSummary {
	latest := make(map[uuid.UUID]Message)
	for _, m := range messages {
		var other uuid.UUID
		switch {
		case m.SenderID == userID:
			other = m.RecipientID
		case m.RecipientID == userID:
			other = m.SenderID
		default:
			continue
		}
		if cur, ok := latest[other]; !ok || Newer(m, cur) {
			latest[other] = m
		}
	}

	winners := make([]Message, 0, len(latest))
	for _, m := range latest {
		winners = append(winners, m)
	}
	sort.Slice(winners, func(i, j int) bool { return Newer(winners[i], winners[j]) })

	if limit > 0 && len(winners) > limit {
		winners = winners[:limit]
	}

	summaries := make([]ConversationSummary, 0, len(winners))
	for _, m := range winners {
		other := m.RecipientID
		if m.RecipientID == userID {
			other = m.SenderID
		}
		summaries = append(summaries, ConversationSummary{
			MessageID:   m.ID,
			Content:     m.Content,
			CreatedAt:   m.CreatedAt,
			SenderID:    m.SenderID,
			RecipientID: m.RecipientID,
			OtherUserID: other,
		})
	}
	return summaries
}
