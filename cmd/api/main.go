package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/incidentops/incident-service/internal/api/http"
	"github.com/incidentops/incident-service/internal/api/http/handlers"
	"github.com/incidentops/incident-service/internal/auth"
	"github.com/incidentops/incident-service/internal/config"
	"github.com/incidentops/incident-service/internal/events"
	"github.com/incidentops/incident-service/internal/observability"
	"github.com/incidentops/incident-service/internal/repository"
	"github.com/incidentops/incident-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	incidentRepo := repository.NewIncidentRepository()
	notificationRepo := repository.NewNotificationRepository()
	messageRepo := repository.NewMessageRepository()
	staffRepo := repository.NewStaffRepository(cfg.Demo.SeedDirectory)

	if cfg.Demo.SeedIncidents > 0 {
		if err := service.SeedIncidents(ctx, incidentRepo, cfg.Demo.SeedIncidents, nil); err != nil {
			logger.Fatal("failed to seed incidents", zap.Error(err))
		}
		logger.Info("seeded demo incidents", zap.Int("count", cfg.Demo.SeedIncidents))
	}

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth)
	incidentService := service.NewIncidentService(incidentRepo, dispatcher, cfg.List.PageSize)
	messageService := service.NewMessageService(messageRepo)
	directoryService := service.NewDirectoryService(staffRepo)
	statsService := service.NewStatsService(incidentRepo, staffRepo)

	notificationService := service.NewNotificationService(dispatcher, notificationRepo, messageRepo, logger)
	notificationService.RegisterHandlers()

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version),
		Auth:           handlers.NewAuthHandler(authService),
		Policy:         handlers.NewPolicyHandler(),
		Incidents:      handlers.NewIncidentsHandler(incidentService),
		Notifications:  handlers.NewNotificationsHandler(notificationRepo),
		Messages:       handlers.NewMessagesHandler(messageService),
		Directory:      handlers.NewDirectoryHandler(directoryService),
		Stats:          handlers.NewStatsHandler(statsService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
