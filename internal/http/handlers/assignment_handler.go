package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/http/dto"
	"github.com/influenzerflow/backend/internal/middleware"
	"github.com/influenzerflow/backend/internal/services"
	"go.uber.org/zap"
)

type AssignmentHandler struct {
	assignmentService *services.AssignmentService
	log               *zap.Logger
}

func NewAssignmentHandler(assignmentService *services.AssignmentService, log *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService, log: log}
}

func (h *AssignmentHandler) AssignCreator(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.AssignCreatorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}
	creatorID, err := uuid.Parse(req.CreatorID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid creator id"})
	}

	brandID := middleware.GetBrandID(c)
	alreadyAssigned, err := h.assignmentService.Assign(c.Context(), brandID, campaignID, creatorID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: dto.AssignResponse{AlreadyAssigned: alreadyAssigned}})
}

func (h *AssignmentHandler) RemoveCreator(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}
	creatorID, err := uuid.Parse(c.Params("creatorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid creator id"})
	}

	brandID := middleware.GetBrandID(c)
	if err := h.assignmentService.Remove(c.Context(), brandID, campaignID, creatorID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *AssignmentHandler) ListAssignments(c *fiber.Ctx) error {
	brandID := middleware.GetBrandID(c)
	assignments, err := h.assignmentService.List(c.Context(), brandID)
	if err != nil {
		h.log.Error("list assignments failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: assignments})
}

// ListContacted is the outreach page source: assignments joined with creator
// records and negotiation history.
func (h *AssignmentHandler) ListContacted(c *fiber.Ctx) error {
	brandID := middleware.GetBrandID(c)
	contacted, err := h.assignmentService.ListContacted(c.Context(), brandID)
	if err != nil {
		h.log.Error("list contacted failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: contacted})
}

func (h *AssignmentHandler) SetPhone(c *fiber.Ctx) error {
	creatorID, err := uuid.Parse(c.Params("creatorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid creator id"})
	}

	var req dto.SetPhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}
	if req.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "phone is required"})
	}

	brandID := middleware.GetBrandID(c)
	if err := h.assignmentService.SetDiscoveredPhone(c.Context(), brandID, creatorID, req.Phone); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}
