package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/incidentops/incident-service/internal/api/http/handlers"
	"github.com/incidentops/incident-service/internal/auth"
	"github.com/incidentops/incident-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Policy         *handlers.PolicyHandler
	Incidents      *handlers.IncidentsHandler
	Notifications  *handlers.NotificationsHandler
	Messages       *handlers.MessagesHandler
	Directory      *handlers.DirectoryHandler
	Stats          *handlers.StatsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	// The policy table is static and safe to serve unauthenticated.
	app.Get("/permissions/:role", cfg.Policy.Permissions)
	app.Get("/navigation/:role", cfg.Policy.Navigation)

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	protected.Post("/auth/role", cfg.Auth.SwitchRole)

	incidents := protected.Group("/incidents")
	incidents.Get("", cfg.Incidents.ListIncidents)
	incidents.Post("", auth.RequirePermission(func(p auth.PermissionSet) bool { return p.CanAdd }), cfg.Incidents.CreateIncident)
	incidents.Get("/:id", cfg.Incidents.GetIncident)
	incidents.Put("/:id", cfg.Incidents.UpdateIncident)
	incidents.Delete("", cfg.Incidents.DeleteIncidents)

	notifications := protected.Group("/notifications")
	notifications.Get("", cfg.Notifications.List)
	notifications.Post("", cfg.Notifications.Create)
	notifications.Get("/unread-count", cfg.Notifications.UnreadCount)
	notifications.Post("/:id/read", cfg.Notifications.MarkRead)
	notifications.Delete("/:id", cfg.Notifications.Remove)
	notifications.Delete("", cfg.Notifications.ClearAll)

	messages := protected.Group("/messages")
	messages.Get("", cfg.Messages.List)
	messages.Post("", cfg.Messages.Send)
	messages.Get("/unread-count", cfg.Messages.UnreadCount)
	messages.Post("/:id/read", cfg.Messages.MarkRead)

	conversations := protected.Group("/conversations")
	conversations.Get("", cfg.Messages.Conversations)
	conversations.Get("/with/:name", cfg.Messages.ConversationWith)
	conversations.Post("/:id/read", cfg.Messages.MarkConversationRead)

	directory := protected.Group("/directory")
	directory.Get("/groups", cfg.Directory.Groups)
	directory.Get("/technicians", cfg.Directory.Search)
	directory.Post("/groups/:group/technicians", auth.RequireRole(domain.RoleAdmin), cfg.Directory.AddTechnician)
	directory.Put("/technicians/:id", auth.RequireRole(domain.RoleAdmin), cfg.Directory.UpdateTechnician)

	stats := protected.Group("/stats")
	stats.Get("/overview", cfg.Stats.Overview)
	stats.Get("/groups", cfg.Stats.Groups)
}
