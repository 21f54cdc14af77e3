package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/http/dto"
	"github.com/influenzerflow/backend/internal/middleware"
	"github.com/influenzerflow/backend/internal/services"
	"go.uber.org/zap"
)

type OutreachHandler struct {
	outreachService *services.OutreachService
	log             *zap.Logger
}

func NewOutreachHandler(outreachService *services.OutreachService, log *zap.Logger) *OutreachHandler {
	return &OutreachHandler{outreachService: outreachService, log: log}
}

func parseOutreachRequest(c *fiber.Ctx) (campaignID, creatorID uuid.UUID, err error) {
	var req dto.OutreachRequest
	if err = c.BodyParser(&req); err != nil {
		return campaignID, creatorID, errors.New("invalid request")
	}
	campaignID, err = uuid.Parse(req.CampaignID)
	if err != nil {
		return campaignID, creatorID, errors.New("invalid campaign_id")
	}
	creatorID, err = uuid.Parse(req.CreatorID)
	if err != nil {
		return campaignID, creatorID, errors.New("invalid creator_id")
	}
	return campaignID, creatorID, nil
}

// respond maps the outreach error set to HTTP. A dispatch failure is a 502
// that still carries the persisted negotiation.
func (h *OutreachHandler) respond(c *fiber.Ctx, neg any, err error) error {
	switch {
	case err == nil:
		return c.JSON(dto.SuccessResponse{OK: true, Data: dto.OutreachResponse{Negotiation: neg, AgentDispatch: "ok"}})
	case errors.Is(err, services.ErrNoPhoneNumber):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrAgentDispatch):
		return c.Status(fiber.StatusBadGateway).JSON(dto.SuccessResponse{OK: false, Data: dto.OutreachResponse{Negotiation: neg, AgentDispatch: "failed"}})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
}

func (h *OutreachHandler) SendAutoEmail(c *fiber.Ctx) error {
	campaignID, creatorID, err := parseOutreachRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	brandID := middleware.GetBrandID(c)
	neg, err := h.outreachService.SendAutoEmail(c.Context(), brandID, campaignID, creatorID)
	return h.respond(c, neg, err)
}

func (h *OutreachHandler) InitiateCall(c *fiber.Ctx) error {
	campaignID, creatorID, err := parseOutreachRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	brandID := middleware.GetBrandID(c)
	neg, err := h.outreachService.InitiateAgentCall(c.Context(), brandID, campaignID, creatorID)
	return h.respond(c, neg, err)
}
