package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/influenzerflow/backend/internal/config"
	"github.com/influenzerflow/backend/internal/db"
	"github.com/influenzerflow/backend/internal/events"
	apphttp "github.com/influenzerflow/backend/internal/http"
	"github.com/influenzerflow/backend/internal/http/handlers"
	"github.com/influenzerflow/backend/internal/repositories"
	"github.com/influenzerflow/backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	brandRepo := repositories.NewBrandRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	creatorRepo := repositories.NewCreatorRepo(pool)
	assignmentRepo := repositories.NewAssignmentRepo(pool)
	negotiationRepo := repositories.NewNegotiationRepo(pool)
	communicationRepo := repositories.NewCommunicationRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	agentClient := services.NewAgentClient(cfg.AgentBaseURL, cfg.AgentServiceToken, log)
	campaignService := services.NewCampaignService(campaignRepo, log)
	assignmentService := services.NewAssignmentService(assignmentRepo, creatorRepo, campaignRepo, negotiationRepo, log)
	negotiationService := services.NewNegotiationService(negotiationRepo, communicationRepo, publisher, log)
	outreachService := services.NewOutreachService(campaignRepo, negotiationRepo, assignmentRepo, communicationRepo, agentClient, publisher, log)
	performanceService := services.NewPerformanceService(campaignRepo, negotiationRepo, communicationRepo, creatorRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(brandRepo, agentClient, cfg, log)
	brandHandler := handlers.NewBrandHandler(brandRepo, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	creatorHandler := handlers.NewCreatorHandler(creatorRepo, log)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, log)
	outreachHandler := handlers.NewOutreachHandler(outreachService, log)
	negotiationHandler := handlers.NewNegotiationHandler(negotiationService, log)
	performanceHandler := handlers.NewPerformanceHandler(performanceService, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb,
		authHandler, brandHandler, campaignHandler, creatorHandler,
		assignmentHandler, outreachHandler, negotiationHandler, performanceHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
