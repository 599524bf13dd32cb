package service

import (
	"context"
	"strings"

	"github.com/incidentops/incident-service/internal/domain"
	"github.com/incidentops/incident-service/internal/repository"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

// MessageSendInput carries the caller-supplied message fields.
type MessageSendInput struct {
	To      string
	ToRole  domain.Role
	Subject string
	Content string
}

// MessageService exposes the in-app messaging relay.
type MessageService struct {
	messages repository.MessageRepository
}

// NewMessageService builds the service.
func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// Send records a message from the actor, creating or updating the
// conversation for the participant pair.
func (s *MessageService) Send(ctx context.Context, actor *domain.User, input MessageSendInput) (string, error) {
	if strings.TrimSpace(input.To) == "" {
		return "", apperrors.NewValidationError("recipient required", nil)
	}
	return s.messages.Add(ctx, &domain.Message{
		From:    actor.Name,
		To:      input.To,
		ToRole:  input.ToRole,
		Subject: input.Subject,
		Content: input.Content,
	})
}

// Inbox returns every message, newest first.
func (s *MessageService) Inbox(ctx context.Context) ([]domain.Message, error) {
	return s.messages.List(ctx)
}

// MarkRead flags a single message as read.
func (s *MessageService) MarkRead(ctx context.Context, id string) error {
	return s.messages.MarkAsRead(ctx, id)
}

// UnreadCount counts unread messages addressed to the actor.
func (s *MessageService) UnreadCount(ctx context.Context, actor *domain.User) (int, error) {
	return s.messages.UnreadCountFor(ctx, actor.Name)
}

// ConversationWith returns the two-party thread between the actor and the
// named participant.
func (s *MessageService) ConversationWith(ctx context.Context, actor *domain.User, other string) ([]domain.Message, error) {
	return s.messages.ListBetween(ctx, actor.Name, other)
}

// Conversations lists conversation aggregates involving the actor.
func (s *MessageService) Conversations(ctx context.Context, actor *domain.User) ([]domain.Conversation, error) {
	all, err := s.messages.Conversations(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Conversation, 0, len(all))
	for i := range all {
		if all[i].Involves(actor.Name) {
			result = append(result, all[i])
		}
	}
	return result, nil
}

// MarkConversationRead zeroes the conversation's unread counter.
func (s *MessageService) MarkConversationRead(ctx context.Context, id string) error {
	return s.messages.MarkConversationRead(ctx, id)
}
