package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/influenzerflow/backend/internal/http/dto"
	"github.com/influenzerflow/backend/internal/middleware"
	"github.com/influenzerflow/backend/internal/repositories"
	"go.uber.org/zap"
)

type BrandHandler struct {
	brandRepo *repositories.BrandRepo
	log       *zap.Logger
}

func NewBrandHandler(brandRepo *repositories.BrandRepo, log *zap.Logger) *BrandHandler {
	return &BrandHandler{brandRepo: brandRepo, log: log}
}

func (h *BrandHandler) GetMe(c *fiber.Ctx) error {
	brandID := middleware.GetBrandID(c)
	brand, err := h.brandRepo.GetByID(c.Context(), brandID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "brand not found"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: brand})
}

// UpdateProfile completes brand onboarding. Company name is the only
// required field; the update flips profile_complete.
func (h *BrandHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.CompanyName == nil || *req.CompanyName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "company_name is required"})
	}

	brandID := middleware.GetBrandID(c)
	brand, err := h.brandRepo.UpdateProfile(c.Context(), brandID, req.DisplayName, req.CompanyName, req.Website, req.Industry)
	if err != nil {
		h.log.Error("failed to update profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: brand})
}
