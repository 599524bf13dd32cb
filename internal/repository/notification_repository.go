package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/incidentops/incident-service/internal/domain"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

// NotificationRepository is the append-only log of system notices.
type NotificationRepository interface {
	Add(ctx context.Context, notification *domain.Notification) (string, error)
	List(ctx context.Context) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
}

type notificationRepository struct {
	mu sync.RWMutex
	// newest first
	notifications []domain.Notification
	now           func() time.Time
}

// NewNotificationRepository instantiates an empty in-memory log.
func NewNotificationRepository() NotificationRepository {
	return &notificationRepository{now: time.Now}
}

// Add prepends the notice with a fresh id, timestamp and unread state.
func (r *notificationRepository) Add(ctx context.Context, notification *domain.Notification) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notification.ID = uuid.NewString()
	notification.Timestamp = r.now()
	notification.Read = false

	r.notifications = append([]domain.Notification{*notification}, r.notifications...)
	return notification.ID, nil
}

func (r *notificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]domain.Notification, len(r.notifications))
	copy(snapshot, r.notifications)
	return snapshot, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = true
			return nil
		}
	}
	return apperrors.NewNotFound("notification", map[string]any{"id": id})
}

func (r *notificationRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("notification", map[string]any{"id": id})
}

func (r *notificationRepository) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = nil
	return nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for i := range r.notifications {
		if !r.notifications[i].Read {
			count++
		}
	}
	return count, nil
}
