package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/incidentops/incident-service/internal/api/dto"
	"github.com/incidentops/incident-service/internal/auth"
	"github.com/incidentops/incident-service/internal/service"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

// MessagesHandler exposes the in-app messaging relay.
type MessagesHandler struct {
	service *service.MessageService
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(messageService *service.MessageService) *MessagesHandler {
	return &MessagesHandler{service: messageService}
}

// List GET /messages.
func (h *MessagesHandler) List(c *fiber.Ctx) error {
	messages, err := h.service.Inbox(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, dto.FromMessage(&messages[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Send POST /messages.
func (h *MessagesHandler) Send(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	id, err := h.service.Send(c.Context(), principal.User, service.MessageSendInput{
		To:      req.To,
		ToRole:  req.ToRole,
		Subject: req.Subject,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"id": id}})
}

// MarkRead POST /messages/:id/read.
func (h *MessagesHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.service.MarkRead(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// UnreadCount GET /messages/unread-count.
func (h *MessagesHandler) UnreadCount(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	count, err := h.service.UnreadCount(c.Context(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.UnreadCountResponse{Unread: count}})
}

// Conversations GET /conversations.
func (h *MessagesHandler) Conversations(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	conversations, err := h.service.Conversations(c.Context(), principal.User)
	if err != nil {
		return err
	}
	items := make([]dto.ConversationResponse, 0, len(conversations))
	for i := range conversations {
		items = append(items, dto.FromConversation(&conversations[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ConversationWith GET /conversations/with/:name.
func (h *MessagesHandler) ConversationWith(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	messages, err := h.service.ConversationWith(c.Context(), principal.User, c.Params("name"))
	if err != nil {
		return err
	}
	items := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, dto.FromMessage(&messages[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// MarkConversationRead POST /conversations/:id/read.
func (h *MessagesHandler) MarkConversationRead(c *fiber.Ctx) error {
	if err := h.service.MarkConversationRead(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
