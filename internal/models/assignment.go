package models

import (
	"time"

	"github.com/google/uuid"
)

// CreatorAssignment links one (brand, creator) pair to a set of campaigns.
// At most one row exists per pair; campaign membership is an idempotent add.
// The row is deleted only when the last campaign is removed from its list.
type CreatorAssignment struct {
	ID              uuid.UUID   `json:"id"`
	BrandID         uuid.UUID   `json:"brand_id"`
	CreatorID       uuid.UUID   `json:"creator_id"`
	CampaignIDs     []uuid.UUID `json:"campaign_ids"`
	PhoneDiscovered bool        `json:"phone_discovered"`
	DiscoveredPhone *string     `json:"discovered_phone,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (a *CreatorAssignment) HasCampaign(campaignID uuid.UUID) bool {
	for _, id := range a.CampaignIDs {
		if id == campaignID {
			return true
		}
	}
	return false
}
