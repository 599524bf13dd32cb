package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/incidentops/incident-service/internal/api/dto"
	"github.com/incidentops/incident-service/internal/domain"
	"github.com/incidentops/incident-service/internal/repository"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

// NotificationsHandler exposes the notification relay.
type NotificationsHandler struct {
	notifications repository.NotificationRepository
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notifications repository.NotificationRepository) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// List GET /notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	notifications, err := h.notifications.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, dto.FromNotification(&notifications[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /notifications.
func (h *NotificationsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" {
		return apperrors.NewValidationError("title required", nil)
	}
	notificationType := req.Type
	if notificationType == "" {
		notificationType = domain.NotificationInfo
	}

	id, err := h.notifications.Add(c.Context(), &domain.Notification{
		Type:    notificationType,
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"id": id}})
}

// MarkRead POST /notifications/:id/read.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.notifications.MarkAsRead(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Remove DELETE /notifications/:id.
func (h *NotificationsHandler) Remove(c *fiber.Ctx) error {
	if err := h.notifications.Remove(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ClearAll DELETE /notifications.
func (h *NotificationsHandler) ClearAll(c *fiber.Ctx) error {
	if err := h.notifications.ClearAll(c.Context()); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// UnreadCount GET /notifications/unread-count.
func (h *NotificationsHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notifications.UnreadCount(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.UnreadCountResponse{Unread: count}})
}
