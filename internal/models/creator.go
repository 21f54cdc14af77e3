package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported platforms
const (
	PlatformInstagram = "instagram"
	PlatformYouTube   = "youtube"
	PlatformTikTok    = "tiktok"
	PlatformTwitter   = "twitter"
)

type CreatorPlatform struct {
	Platform  string `json:"platform"`
	Handle    string `json:"handle"`
	Followers int    `json:"followers"`
}

// Creator is read-only through the API; rows are written by the seeder only.
type Creator struct {
	ID             uuid.UUID         `json:"id"`
	DisplayName    string            `json:"display_name"`
	Email          *string           `json:"email,omitempty"`
	Phone          *string           `json:"phone,omitempty"`
	Category       string            `json:"category"`
	EngagementRate float64           `json:"engagement_rate"`
	BaseRate       string            `json:"base_rate"` // numeric as string
	Available      bool              `json:"available"`
	Platforms      []CreatorPlatform `json:"platforms"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// TotalFollowers sums followers across all platforms.
func (c *Creator) TotalFollowers() int {
	total := 0
	for _, p := range c.Platforms {
		total += p.Followers
	}
	return total
}

// FollowersOn returns the follower count for one platform, 0 if absent.
func (c *Creator) FollowersOn(platform string) int {
	for _, p := range c.Platforms {
		if p.Platform == platform {
			return p.Followers
		}
	}
	return 0
}

func (c *Creator) HasPlatform(platform string) bool {
	for _, p := range c.Platforms {
		if p.Platform == platform {
			return true
		}
	}
	return false
}
