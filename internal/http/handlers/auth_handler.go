package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/influenzerflow/backend/internal/auth"
	"github.com/influenzerflow/backend/internal/config"
	"github.com/influenzerflow/backend/internal/http/dto"
	"github.com/influenzerflow/backend/internal/repositories"
	"github.com/influenzerflow/backend/internal/services"
	"go.uber.org/zap"
)

type AuthHandler struct {
	brandRepo *repositories.BrandRepo
	agent     *services.AgentClient
	cfg       *config.Config
	log       *zap.Logger
}

func NewAuthHandler(brandRepo *repositories.BrandRepo, agent *services.AgentClient, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{brandRepo: brandRepo, agent: agent, cfg: cfg, log: log}
}

// SessionAuth exchanges a provider session assertion for an API token,
// upserting the brand row on the way.
func (h *AuthHandler) SessionAuth(c *fiber.Ctx) error {
	var req dto.SessionAuthRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.Assertion == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "assertion is required"})
	}

	vals, err := auth.ValidateSessionAssertion(req.Assertion, h.cfg.ProviderSecret, h.cfg.SessionMaxAge)
	if err != nil {
		h.log.Debug("session assertion validation failed", zap.Error(err))
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	uid := vals.Get("uid")
	email := vals.Get("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "email missing from assertion"})
	}

	var displayName, avatarURL *string
	if v := vals.Get("display_name"); v != "" {
		displayName = &v
	}
	if v := vals.Get("avatar_url"); v != "" {
		avatarURL = &v
	}

	brand, err := h.brandRepo.UpsertByProviderUID(c.Context(), uid, email, displayName, avatarURL)
	if err != nil {
		h.log.Error("failed to upsert brand", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}

	// Provision on the agent backend; failures are logged inside and ignored.
	_ = h.agent.CreateBrand(c.Context(), uid, email, displayName, avatarURL)

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, brand.ID, brand.Email, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("failed to generate jwt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(dto.AuthResponse{
		Token: token,
		Brand: brand,
	})
}
