package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses. Transitions are deliberately not enforced — the edit
// surface may set any status from any prior one.
const (
	CampaignStatusDraft       = "draft"
	CampaignStatusActive      = "active"
	CampaignStatusNegotiating = "negotiating"
	CampaignStatusCompleted   = "completed"
	CampaignStatusCancelled   = "cancelled"
)

var AllCampaignStatuses = []string{
	CampaignStatusDraft, CampaignStatusActive, CampaignStatusNegotiating,
	CampaignStatusCompleted, CampaignStatusCancelled,
}

func IsValidCampaignStatus(s string) bool {
	for _, cs := range AllCampaignStatuses {
		if cs == s {
			return true
		}
	}
	return false
}

// PlatformRequirement is one content line of a campaign brief.
type PlatformRequirement struct {
	Platform    string `json:"platform"`     // instagram / youtube / tiktok / twitter
	ContentType string `json:"content_type"` // post / reel / story / video / short
	Quantity    int    `json:"quantity"`
}

// TargetCategory narrows creator discovery for a campaign.
type TargetCategory struct {
	Category     string `json:"category"`
	MinFollowers int    `json:"min_followers"`
	MaxBudget    string `json:"max_budget"` // numeric as string
}

type Campaign struct {
	ID               uuid.UUID             `json:"id"`
	BrandID          uuid.UUID             `json:"brand_id"`
	Name             string                `json:"name"`
	Description      *string               `json:"description,omitempty"`
	BudgetPerCreator string                `json:"budget_per_creator"` // numeric as string
	TargetAudience   *string               `json:"target_audience,omitempty"`
	Requirements     []PlatformRequirement `json:"requirements"`
	TargetCategories []TargetCategory      `json:"target_categories,omitempty"`
	StartDate        time.Time             `json:"start_date"`
	EndDate          time.Time             `json:"end_date"`
	Status           string                `json:"status"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// IsCurrent classifies a campaign as current (vs past) for dashboard views.
// A campaign is current if its status is active/draft OR its end date is
// today-or-later, AND its latest negotiation (if any) is not closed.
// latestNegotiationStatus is nil when the campaign has no negotiations yet.
func (c *Campaign) IsCurrent(latestNegotiationStatus *string, today time.Time) bool {
	if latestNegotiationStatus != nil && IsClosedNegotiationStatus(*latestNegotiationStatus) {
		return false
	}
	if c.Status == CampaignStatusActive || c.Status == CampaignStatusDraft {
		return true
	}
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return !c.EndDate.Before(day)
}
