package domain

import (
	"strings"
	"time"
)

// Message is a user-to-user note delivered in-app.
type Message struct {
	ID        string
	From      string
	To        string
	ToRole    Role
	Subject   string
	Content   string
	Timestamp time.Time
	Read      bool
	ThreadID  string
}

// Conversation aggregates the messages exchanged between two participants.
type Conversation struct {
	ID              string
	Participants    [2]string
	LastMessage     string
	LastMessageTime time.Time
	UnreadCount     int
}

// Involves reports whether name is one of the two participants.
func (c *Conversation) Involves(name string) bool {
	return c.Participants[0] == name || c.Participants[1] == name
}

// ConversationKey canonicalizes an unordered participant pair so that
// {a,b} and {b,a} address the same conversation.
func ConversationKey(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + "\x00" + b
}
