package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/opskit/teamdesk/internal/api/http"
	"github.com/opskit/teamdesk/internal/api/http/handlers"
	"github.com/opskit/teamdesk/internal/config"
	"github.com/opskit/teamdesk/internal/events"
	"github.com/opskit/teamdesk/internal/observability"
	"github.com/opskit/teamdesk/internal/persistence"
	"github.com/opskit/teamdesk/internal/service"
	"github.com/opskit/teamdesk/internal/worker"
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

	store, err := persistence.NewStore(cfg.Store, logger)
	if err != nil {
		logger.Fatal("failed to open document store", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	teamService := service.NewTeamService(service.TeamDependencies{Store: store, Dispatcher: dispatcher})
	ticketService := service.NewTicketService(service.TicketDependencies{Store: store, Dispatcher: dispatcher})
	userService := service.NewUserService(service.UserDependencies{Store: store, Dispatcher: dispatcher})

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store)
	teamsHandler := handlers.NewTeamsHandler(teamService)
	ticketsHandler := handlers.NewTicketsHandler(ticketService)
	usersHandler := handlers.NewUsersHandler(userService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  healthHandler,
		Teams:   teamsHandler,
		Tickets: ticketsHandler,
		Users:   usersHandler,
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
