package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Zomujo/dial4inclusion/internal/api/http"
	"github.com/Zomujo/dial4inclusion/internal/api/http/handlers"
	"github.com/Zomujo/dial4inclusion/internal/config"
	"github.com/Zomujo/dial4inclusion/internal/coordinator"
	"github.com/Zomujo/dial4inclusion/internal/events"
	"github.com/Zomujo/dial4inclusion/internal/gateway"
	"github.com/Zomujo/dial4inclusion/internal/monitor"
	"github.com/Zomujo/dial4inclusion/internal/observability"
	"github.com/Zomujo/dial4inclusion/internal/session"
	"github.com/Zomujo/dial4inclusion/internal/store"
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

	client := gateway.NewClient(cfg.API, logger)

	sessions := session.NewManager(session.NewFileStorage(cfg.Session.Dir), client, logger)
	if sessions.Load() {
		if user := sessions.CurrentUser(); user != nil {
			logger.Info("restored session", zap.String("user", user.DisplayName()), zap.String("role", string(user.Role)))
		}
	}

	rdb := store.NewRedisClient(cfg.Redis, logger)
	if rdb != nil {
		defer rdb.Close() //nolint:errcheck
	}
	users := store.NewUserCache(client, rdb, cfg.Redis.LookupTTL(), logger)

	dispatcher := events.NewInMemoryDispatcher()

	cases := store.New(store.Dependencies{
		Gateway:    client,
		Session:    sessions,
		Users:      users,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	assignment := coordinator.NewAssignment(client, sessions, cases, dispatcher, logger)
	escalation := coordinator.NewEscalation(client, sessions, cases, dispatcher, logger)

	aggregator := monitor.New(client, sessions, logger)
	aggregator.SubscribeTo(dispatcher)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(),
		Auth:       handlers.NewAuthHandler(sessions),
		Cases:      handlers.NewCasesHandler(cases),
		Actions:    handlers.NewActionsHandler(assignment, escalation),
		Monitoring: handlers.NewMonitoringHandler(aggregator),
		Sessions:   sessions,
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
