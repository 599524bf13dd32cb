package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/incidentops/incident-service/internal/domain"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

// MessageRepository is the log of user-to-user messages plus the derived
// conversation aggregates.
type MessageRepository interface {
	Add(ctx context.Context, message *domain.Message) (string, error)
	List(ctx context.Context) ([]domain.Message, error)
	MarkAsRead(ctx context.Context, id string) error
	UnreadCountFor(ctx context.Context, recipient string) (int, error)
	ListBetween(ctx context.Context, a, b string) ([]domain.Message, error)
	Conversations(ctx context.Context) ([]domain.Conversation, error)
	MarkConversationRead(ctx context.Context, id string) error
}

type messageRepository struct {
	mu sync.RWMutex
	// newest first
	messages []domain.Message
	// newest conversation first; byPair indexes into conversation ids
	conversations []domain.Conversation
	byPair        map[string]string
	now           func() time.Time
}

// NewMessageRepository instantiates the in-memory message log.
func NewMessageRepository() MessageRepository {
	return &messageRepository{byPair: make(map[string]string)}
}

func (r *messageRepository) timestamp() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

// Add prepends the message and upserts the conversation for the unordered
// {from, to} pair: an existing conversation gets its last-message fields
// refreshed and its unread count incremented, a new one starts at 1.
func (r *messageRepository) Add(ctx context.Context, message *domain.Message) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	message.ID = uuid.NewString()
	message.Timestamp = r.timestamp()
	message.Read = false
	if message.ThreadID == "" {
		message.ThreadID = uuid.NewString()
	}
	r.messages = append([]domain.Message{*message}, r.messages...)

	key := domain.ConversationKey(message.From, message.To)
	if convID, ok := r.byPair[key]; ok {
		for i := range r.conversations {
			if r.conversations[i].ID == convID {
				r.conversations[i].LastMessage = message.Content
				r.conversations[i].LastMessageTime = message.Timestamp
				r.conversations[i].UnreadCount++
				break
			}
		}
		return message.ID, nil
	}

	conv := domain.Conversation{
		ID:              uuid.NewString(),
		Participants:    [2]string{message.From, message.To},
		LastMessage:     message.Content,
		LastMessageTime: message.Timestamp,
		UnreadCount:     1,
	}
	r.conversations = append([]domain.Conversation{conv}, r.conversations...)
	r.byPair[key] = conv.ID
	return message.ID, nil
}

func (r *messageRepository) List(ctx context.Context) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]domain.Message, len(r.messages))
	copy(snapshot, r.messages)
	return snapshot, nil
}

func (r *messageRepository) MarkAsRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.messages {
		if r.messages[i].ID == id {
			r.messages[i].Read = true
			return nil
		}
	}
	return apperrors.NewNotFound("message", map[string]any{"id": id})
}

func (r *messageRepository) UnreadCountFor(ctx context.Context, recipient string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for i := range r.messages {
		if !r.messages[i].Read && r.messages[i].To == recipient {
			count++
		}
	}
	return count, nil
}

// ListBetween returns the two-party thread, newest first.
func (r *messageRepository) ListBetween(ctx context.Context, a, b string) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := domain.ConversationKey(a, b)
	var result []domain.Message
	for i := range r.messages {
		if domain.ConversationKey(r.messages[i].From, r.messages[i].To) == key {
			result = append(result, r.messages[i])
		}
	}
	return result, nil
}

func (r *messageRepository) Conversations(ctx context.Context) ([]domain.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]domain.Conversation, len(r.conversations))
	copy(snapshot, r.conversations)
	return snapshot, nil
}

// MarkConversationRead zeroes the unread counter. Inbound messages are the
// only thing that increments it again.
func (r *messageRepository) MarkConversationRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.conversations {
		if r.conversations[i].ID == id {
			r.conversations[i].UnreadCount = 0
			return nil
		}
	}
	return apperrors.NewNotFound("conversation", map[string]any{"id": id})
}
