package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/incidentops/incident-service/internal/domain"
	"github.com/incidentops/incident-service/internal/events"
	"github.com/incidentops/incident-service/internal/repository"
)

// NotificationService turns domain events into notices and, for USER-created
// incidents, a message addressed to the ADMIN role.
type NotificationService struct {
	dispatcher    events.Dispatcher
	notifications repository.NotificationRepository
	messages      repository.MessageRepository
	logger        *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, notifications repository.NotificationRepository, messages repository.MessageRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher:    dispatcher,
		notifications: notifications,
		messages:      messages,
		logger:        logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventIncidentCreated, n.handleIncidentCreated)
	n.dispatcher.Subscribe(events.EventIncidentModified, n.handleIncidentModified)
	n.dispatcher.Subscribe(events.EventIncidentsDeleted, n.handleIncidentsDeleted)
}

// handleIncidentCreated emits the role-dependent creation notice. A USER
// creator additionally notifies the ADMIN role by message.
func (n *NotificationService) handleIncidentCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.IncidentCreatedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("IncidentCreated", zap.String("incident_id", payload.IncidentID), zap.String("actor", event.Actor.Name))

	var message string
	switch event.Actor.Role {
	case domain.RoleTechnician:
		message = fmt.Sprintf("You created: %s", payload.Title)
	case domain.RoleAdmin:
		message = fmt.Sprintf("New incident: %s", payload.Title)
	default:
		message = fmt.Sprintf("New incident created: %s", payload.Title)
	}

	if _, err := n.notifications.Add(ctx, &domain.Notification{
		Type:    domain.NotificationInfo,
		Title:   "Incident Created",
		Message: message,
	}); err != nil {
		return err
	}

	if event.Actor.Role == domain.RoleUser {
		if _, err := n.messages.Add(ctx, &domain.Message{
			From:    event.Actor.Name,
			To:      "Admin",
			ToRole:  domain.RoleAdmin,
			Subject: payload.Title,
			Content: fmt.Sprintf("New incident created: %s. Priority: %s", payload.Title, payload.Priority),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (n *NotificationService) handleIncidentModified(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.IncidentModifiedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("IncidentModified", zap.String("incident_id", payload.IncidentID), zap.String("actor", event.Actor.Name))

	_, err := n.notifications.Add(ctx, &domain.Notification{
		Type:    domain.NotificationWarning,
		Title:   "Incident Modified",
		Message: fmt.Sprintf("Incident #%s has been modified", payload.IncidentID),
	})
	return err
}

func (n *NotificationService) handleIncidentsDeleted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.IncidentsDeletedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("IncidentsDeleted", zap.Int("count", payload.Count), zap.String("actor", event.Actor.Name))

	_, err := n.notifications.Add(ctx, &domain.Notification{
		Type:    domain.NotificationCritical,
		Title:   "Incidents Deleted",
		Message: fmt.Sprintf("%d incident(s) deleted", payload.Count),
	})
	return err
}
