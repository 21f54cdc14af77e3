package dto

import (
	"time"

	"github.com/influenzerflow/backend/internal/models"
)

type SessionAuthRequest struct {
	Assertion string `json:"assertion"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	CompanyName *string `json:"company_name"`
	Website     *string `json:"website"`
	Industry    *string `json:"industry"`
}

type CreateCampaignRequest struct {
	Name             string                       `json:"name"`
	Description      *string                      `json:"description"`
	BudgetPerCreator string                       `json:"budget_per_creator"`
	TargetAudience   *string                      `json:"target_audience"`
	Requirements     []models.PlatformRequirement `json:"requirements"`
	TargetCategories []models.TargetCategory      `json:"target_categories"`
	StartDate        time.Time                    `json:"start_date"`
	EndDate          time.Time                    `json:"end_date"`
	Status           string                       `json:"status"`
}

type UpdateCampaignRequest struct {
	Name             string                       `json:"name"`
	Description      *string                      `json:"description"`
	BudgetPerCreator string                       `json:"budget_per_creator"`
	TargetAudience   *string                      `json:"target_audience"`
	Requirements     []models.PlatformRequirement `json:"requirements"`
	TargetCategories []models.TargetCategory      `json:"target_categories"`
	StartDate        time.Time                    `json:"start_date"`
	EndDate          time.Time                    `json:"end_date"`
	Status           string                       `json:"status"`
}

type AssignCreatorRequest struct {
	CreatorID string `json:"creator_id"`
}

type SetPhoneRequest struct {
	Phone string `json:"phone"`
}

type OutreachRequest struct {
	CampaignID string `json:"campaign_id"`
	CreatorID  string `json:"creator_id"`
}

type UpdateNegotiationRequest struct {
	Status          *string              `json:"status"`
	ProposedRate    *string              `json:"proposed_rate"`
	CounterRate     *string              `json:"counter_rate"`
	FinalRate       *string              `json:"final_rate"`
	Deliverables    []models.Deliverable `json:"deliverables"`
	PaymentStatus   *string              `json:"payment_status"`
	EscalationCount *int                 `json:"escalation_count"`
}
