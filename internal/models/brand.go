package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is the account behind every authenticated identity. Identity itself
// lives with the hosted auth provider; we only keep the profile.
type Brand struct {
	ID              uuid.UUID `json:"id"`
	ProviderUID     string    `json:"provider_uid"`
	Email           string    `json:"email"`
	DisplayName     *string   `json:"display_name,omitempty"`
	AvatarURL       *string   `json:"avatar_url,omitempty"`
	CompanyName     *string   `json:"company_name,omitempty"`
	Website         *string   `json:"website,omitempty"`
	Industry        *string   `json:"industry,omitempty"`
	ProfileComplete bool      `json:"profile_complete"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
