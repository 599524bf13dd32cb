package dto

import (
	"time"

	"github.com/incidentops/incident-service/internal/domain"
)

// CreateNotificationRequest payload.
type CreateNotificationRequest struct {
	Type    domain.NotificationType `json:"type"`
	Title   string                  `json:"title"`
	Message string                  `json:"message"`
}

// NotificationResponse wire form.
type NotificationResponse struct {
	ID        string                  `json:"id"`
	Type      domain.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Timestamp time.Time               `json:"timestamp"`
	Read      bool                    `json:"read"`
}

// UnreadCountResponse reports an unread tally.
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

// FromNotification maps a notice to its wire form.
func FromNotification(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: n.Timestamp,
		Read:      n.Read,
	}
}
