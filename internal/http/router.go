package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/influenzerflow/backend/internal/config"
	"github.com/influenzerflow/backend/internal/http/handlers"
	"github.com/influenzerflow/backend/internal/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	brandHandler *handlers.BrandHandler,
	campaignHandler *handlers.CampaignHandler,
	creatorHandler *handlers.CreatorHandler,
	assignmentHandler *handlers.AssignmentHandler,
	outreachHandler *handlers.OutreachHandler,
	negotiationHandler *handlers.NegotiationHandler,
	performanceHandler *handlers.PerformanceHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/session", authHandler.SessionAuth)

	// Rate-limited endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// Brand profile
	protected.Get("/me", brandHandler.GetMe)
	protected.Put("/me", brandHandler.UpdateProfile)

	// Campaigns
	protected.Post("/campaigns", campaignHandler.CreateCampaign)
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Get("/campaigns/:id", campaignHandler.GetCampaign)
	protected.Put("/campaigns/:id", campaignHandler.UpdateCampaign)
	protected.Delete("/campaigns/:id", campaignHandler.DeleteCampaign)

	// Creator discovery
	protected.Get("/creators", creatorHandler.ListCreators)
	protected.Get("/creators/:id", creatorHandler.GetCreator)

	// Assignments
	protected.Post("/campaigns/:id/creators", assignmentHandler.AssignCreator)
	protected.Delete("/campaigns/:id/creators/:creatorId", assignmentHandler.RemoveCreator)
	protected.Get("/assignments", assignmentHandler.ListAssignments)
	protected.Get("/assignments/contacted", assignmentHandler.ListContacted)
	protected.Put("/assignments/:creatorId/phone", assignmentHandler.SetPhone)

	// Outreach
	protected.Post("/outreach/email", outreachHandler.SendAutoEmail)
	protected.Post("/outreach/call", outreachHandler.InitiateCall)

	// Negotiations
	protected.Get("/negotiations", negotiationHandler.ListNegotiations)
	protected.Get("/negotiations/:id", negotiationHandler.GetNegotiation)
	protected.Put("/negotiations/:id", negotiationHandler.UpdateNegotiation)
	protected.Get("/negotiations/:id/communications", negotiationHandler.GetCommunications)

	// Performance
	protected.Get("/performance/summary", performanceHandler.GetSummary)
	protected.Get("/performance/campaigns", performanceHandler.GetPerCampaign)
	protected.Get("/campaigns/:id/performance", performanceHandler.GetCampaignPerformance)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
