package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/http/dto"
	"github.com/influenzerflow/backend/internal/middleware"
	"github.com/influenzerflow/backend/internal/services"
	"go.uber.org/zap"
)

type PerformanceHandler struct {
	performanceService *services.PerformanceService
	log                *zap.Logger
}

func NewPerformanceHandler(performanceService *services.PerformanceService, log *zap.Logger) *PerformanceHandler {
	return &PerformanceHandler{performanceService: performanceService, log: log}
}

func (h *PerformanceHandler) GetSummary(c *fiber.Ctx) error {
	brandID := middleware.GetBrandID(c)
	summary, err := h.performanceService.Summary(c.Context(), brandID)
	if err != nil {
		h.log.Error("performance summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: summary})
}

func (h *PerformanceHandler) GetCampaignPerformance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	brandID := middleware.GetBrandID(c)
	row, err := h.performanceService.ForCampaign(c.Context(), brandID, id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: row})
}

func (h *PerformanceHandler) GetPerCampaign(c *fiber.Ctx) error {
	brandID := middleware.GetBrandID(c)
	rows, err := h.performanceService.PerCampaign(c.Context(), brandID)
	if err != nil {
		h.log.Error("per-campaign performance failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: rows})
}
