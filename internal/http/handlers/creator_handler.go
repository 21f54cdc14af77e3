package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/http/dto"
	"github.com/influenzerflow/backend/internal/repositories"
	"github.com/influenzerflow/backend/internal/services"
	"go.uber.org/zap"
)

type CreatorHandler struct {
	creatorRepo *repositories.CreatorRepo
	log         *zap.Logger
}

func NewCreatorHandler(creatorRepo *repositories.CreatorRepo, log *zap.Logger) *CreatorHandler {
	return &CreatorHandler{creatorRepo: creatorRepo, log: log}
}

// ListCreators serves discovery. The full catalog is loaded and filtered in
// memory; filters come in as query params and combine with AND.
func (h *CreatorHandler) ListCreators(c *fiber.Ctx) error {
	creators, err := h.creatorRepo.ListAll(c.Context())
	if err != nil {
		h.log.Error("list creators failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	filter := services.CreatorFilter{
		Category: c.Query("category"),
		Platform: c.Query("platform"),
		Query:    c.Query("q"),
	}
	if v := c.Query("min_followers"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MinFollowers = n
		}
	}
	if v := c.Query("max_budget"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxBudget = f
		}
	}
	if v := c.Query("available"); v == "true" || v == "1" {
		filter.AvailableOnly = true
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: services.FilterCreators(creators, filter)})
}

func (h *CreatorHandler) GetCreator(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid creator id"})
	}

	creator, err := h.creatorRepo.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "creator not found"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: creator})
}
