package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentops/incident-service/internal/domain"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

func TestMessageRepository_AddCreatesConversation(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository()

	id, err := repo.Add(ctx, &domain.Message{From: "Alice", To: "Bob", Content: "hello"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	conversations, err := repo.Conversations(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "hello", conversations[0].LastMessage)
	assert.Equal(t, 1, conversations[0].UnreadCount)
	assert.True(t, conversations[0].Involves("Alice"))
	assert.True(t, conversations[0].Involves("Bob"))
}

// Replies address the same conversation no matter which participant sends:
// the pair key is unordered.
func TestMessageRepository_PairIsUnordered(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository()

	_, err := repo.Add(ctx, &domain.Message{From: "Alice", To: "Bob", Content: "hi"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, &domain.Message{From: "Bob", To: "Alice", Content: "hi back"})
	require.NoError(t, err)

	conversations, err := repo.Conversations(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 1, "reply must not fork a second conversation")
	assert.Equal(t, "hi back", conversations[0].LastMessage)
	assert.Equal(t, 2, conversations[0].UnreadCount)
}

func TestMessageRepository_SeparatePairsSeparateConversations(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository()

	_, err := repo.Add(ctx, &domain.Message{From: "Alice", To: "Bob", Content: "one"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, &domain.Message{From: "Alice", To: "Carol", Content: "two"})
	require.NoError(t, err)

	conversations, err := repo.Conversations(ctx)
	require.NoError(t, err)
	assert.Len(t, conversations, 2)
	// newest conversation first
	assert.Equal(t, "two", conversations[0].LastMessage)
}

func TestMessageRepository_MarkConversationRead(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository()

	_, err := repo.Add(ctx, &domain.Message{From: "Alice", To: "Bob", Content: "one"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, &domain.Message{From: "Alice", To: "Bob", Content: "two"})
	require.NoError(t, err)

	conversations, err := repo.Conversations(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, 2, conversations[0].UnreadCount)

	require.NoError(t, repo.MarkConversationRead(ctx, conversations[0].ID))
	conversations, err = repo.Conversations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, conversations[0].UnreadCount)

	// the next inbound message starts counting again
	_, err = repo.Add(ctx, &domain.Message{From: "Bob", To: "Alice", Content: "three"})
	require.NoError(t, err)
	conversations, err = repo.Conversations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, conversations[0].UnreadCount)

	err = repo.MarkConversationRead(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMessageRepository_UnreadCountFor(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository()

	first, err := repo.Add(ctx, &domain.Message{From: "Alice", To: "Bob", Content: "one"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, &domain.Message{From: "Carol", To: "Bob", Content: "two"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, &domain.Message{From: "Bob", To: "Alice", Content: "three"})
	require.NoError(t, err)

	count, err := repo.UnreadCountFor(ctx, "Bob")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.MarkAsRead(ctx, first))
	count, err = repo.UnreadCountFor(ctx, "Bob")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMessageRepository_ListBetween(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository()

	_, err := repo.Add(ctx, &domain.Message{From: "Alice", To: "Bob", Content: "one"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, &domain.Message{From: "Bob", To: "Alice", Content: "two"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, &domain.Message{From: "Alice", To: "Carol", Content: "noise"})
	require.NoError(t, err)

	thread, err := repo.ListBetween(ctx, "Bob", "Alice")
	require.NoError(t, err)
	require.Len(t, thread, 2)
	// newest first
	assert.Equal(t, "two", thread[0].Content)
	assert.Equal(t, "one", thread[1].Content)
}
