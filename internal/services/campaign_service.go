package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/models"
	"github.com/influenzerflow/backend/internal/repositories"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaignRepo *repositories.CampaignRepo
	log          *zap.Logger
}

func NewCampaignService(campaignRepo *repositories.CampaignRepo, log *zap.Logger) *CampaignService {
	return &CampaignService{campaignRepo: campaignRepo, log: log}
}

func (s *CampaignService) Create(ctx context.Context, brandID uuid.UUID, c *models.Campaign) error {
	c.BrandID = brandID
	if c.Status == "" {
		c.Status = models.CampaignStatusDraft
	}
	if !models.IsValidCampaignStatus(c.Status) {
		return fmt.Errorf("invalid campaign status %q", c.Status)
	}
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("end date must not be before start date")
	}

	return s.campaignRepo.Create(ctx, c)
}

func (s *CampaignService) GetByID(ctx context.Context, id, brandID uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.BrandID != brandID {
		return nil, fmt.Errorf("campaign not found")
	}
	return c, nil
}

func (s *CampaignService) List(ctx context.Context, brandID uuid.UUID, f repositories.CampaignFilter) ([]models.Campaign, error) {
	f.BrandID = &brandID
	return s.campaignRepo.List(ctx, f)
}

// Update merges non-zero fields of c into the stored campaign. Status is
// free-form within the known set — no transition graph is enforced.
func (s *CampaignService) Update(ctx context.Context, id, brandID uuid.UUID, c *models.Campaign) error {
	existing, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("campaign not found")
	}
	if existing.BrandID != brandID {
		return fmt.Errorf("campaign not found")
	}

	c.ID = id
	c.BrandID = existing.BrandID
	if c.Name == "" {
		c.Name = existing.Name
	}
	if c.Description == nil {
		c.Description = existing.Description
	}
	if c.BudgetPerCreator == "" {
		c.BudgetPerCreator = existing.BudgetPerCreator
	}
	if c.TargetAudience == nil {
		c.TargetAudience = existing.TargetAudience
	}
	if c.Requirements == nil {
		c.Requirements = existing.Requirements
	}
	if c.TargetCategories == nil {
		c.TargetCategories = existing.TargetCategories
	}
	if c.StartDate.IsZero() {
		c.StartDate = existing.StartDate
	}
	if c.EndDate.IsZero() {
		c.EndDate = existing.EndDate
	}
	if c.Status == "" {
		c.Status = existing.Status
	}
	if !models.IsValidCampaignStatus(c.Status) {
		return fmt.Errorf("invalid campaign status %q", c.Status)
	}

	return s.campaignRepo.Update(ctx, c)
}

func (s *CampaignService) Delete(ctx context.Context, id, brandID uuid.UUID) error {
	existing, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("campaign not found")
	}
	if existing.BrandID != brandID {
		return fmt.Errorf("campaign not found")
	}

	return s.campaignRepo.Delete(ctx, id)
}
