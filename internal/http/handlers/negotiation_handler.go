package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/http/dto"
	"github.com/influenzerflow/backend/internal/middleware"
	"github.com/influenzerflow/backend/internal/repositories"
	"github.com/influenzerflow/backend/internal/services"
	"go.uber.org/zap"
)

type NegotiationHandler struct {
	negotiationService *services.NegotiationService
	log                *zap.Logger
}

func NewNegotiationHandler(negotiationService *services.NegotiationService, log *zap.Logger) *NegotiationHandler {
	return &NegotiationHandler{negotiationService: negotiationService, log: log}
}

func (h *NegotiationHandler) ListNegotiations(c *fiber.Ctx) error {
	brandID := middleware.GetBrandID(c)
	filter := repositories.NegotiationFilter{}

	if v := c.Query("campaign_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.CampaignID = &id
		}
	}
	if v := c.Query("creator_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.CreatorID = &id
		}
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	negotiations, err := h.negotiationService.List(c.Context(), brandID, filter)
	if err != nil {
		h.log.Error("list negotiations failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: negotiations})
}

func (h *NegotiationHandler) GetNegotiation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid negotiation id"})
	}

	brandID := middleware.GetBrandID(c)
	neg, err := h.negotiationService.GetByID(c.Context(), id, brandID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "negotiation not found"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: neg})
}

func (h *NegotiationHandler) UpdateNegotiation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid negotiation id"})
	}

	var req dto.UpdateNegotiationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	brandID := middleware.GetBrandID(c)
	neg, err := h.negotiationService.Update(c.Context(), id, brandID, repositories.NegotiationPatch{
		Status:          req.Status,
		ProposedRate:    req.ProposedRate,
		CounterRate:     req.CounterRate,
		FinalRate:       req.FinalRate,
		Deliverables:    req.Deliverables,
		PaymentStatus:   req.PaymentStatus,
		EscalationCount: req.EscalationCount,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: neg})
}

// GetCommunications returns the email and call timeline of one negotiation.
func (h *NegotiationHandler) GetCommunications(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid negotiation id"})
	}

	brandID := middleware.GetBrandID(c)
	comms, err := h.negotiationService.Communications(c.Context(), id, brandID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: comms})
}
