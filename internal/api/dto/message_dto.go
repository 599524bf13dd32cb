package dto

import (
	"time"

	"github.com/incidentops/incident-service/internal/domain"
)

// SendMessageRequest payload.
type SendMessageRequest struct {
	To      string      `json:"to"`
	ToRole  domain.Role `json:"to_role"`
	Subject string      `json:"subject"`
	Content string      `json:"content"`
}

// MessageResponse wire form.
type MessageResponse struct {
	ID        string      `json:"id"`
	From      string      `json:"from"`
	To        string      `json:"to"`
	ToRole    domain.Role `json:"to_role"`
	Subject   string      `json:"subject"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	Read      bool        `json:"read"`
	ThreadID  string      `json:"thread_id"`
}

// ConversationResponse wire form of a conversation aggregate.
type ConversationResponse struct {
	ID              string    `json:"id"`
	Participants    []string  `json:"participants"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
	UnreadCount     int       `json:"unread_count"`
}

// FromMessage maps a message to its wire form.
func FromMessage(m *domain.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		From:      m.From,
		To:        m.To,
		ToRole:    m.ToRole,
		Subject:   m.Subject,
		Content:   m.Content,
		Timestamp: m.Timestamp,
		Read:      m.Read,
		ThreadID:  m.ThreadID,
	}
}

// FromConversation maps a conversation to its wire form.
func FromConversation(c *domain.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:              c.ID,
		Participants:    []string{c.Participants[0], c.Participants[1]},
		LastMessage:     c.LastMessage,
		LastMessageTime: c.LastMessageTime,
		UnreadCount:     c.UnreadCount,
	}
}
