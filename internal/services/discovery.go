package services

import (
	"strconv"
	"strings"

	"github.com/influenzerflow/backend/internal/models"
)

// CreatorFilter holds the discovery-page filters. Zero values mean "not
// active"; an all-zero filter returns the full set.
type CreatorFilter struct {
	Category      string
	Platform      string
	MinFollowers  int
	MaxBudget     float64 // creator base rate must be <= this
	AvailableOnly bool
	Query         string // case-insensitive match on name, category, handles
}

func (f CreatorFilter) IsZero() bool {
	return f.Category == "" && f.Platform == "" && f.MinFollowers == 0 &&
		f.MaxBudget == 0 && !f.AvailableOnly && f.Query == ""
}

// FilterCreators applies every active predicate over the full loaded
// snapshot. Filtering stays in memory on purpose — the storage layer only
// ever serves the whole catalog.
func FilterCreators(creators []models.Creator, f CreatorFilter) []models.Creator {
	if f.IsZero() {
		return creators
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.Creator, 0, len(creators))
	for _, c := range creators {
		if f.Category != "" && !strings.EqualFold(c.Category, f.Category) {
			continue
		}
		if f.Platform != "" && !c.HasPlatform(f.Platform) {
			continue
		}
		if f.MinFollowers > 0 {
			followers := c.TotalFollowers()
			if f.Platform != "" {
				followers = c.FollowersOn(f.Platform)
			}
			if followers < f.MinFollowers {
				continue
			}
		}
		if f.MaxBudget > 0 {
			rate, err := strconv.ParseFloat(c.BaseRate, 64)
			if err != nil || rate > f.MaxBudget {
				continue
			}
		}
		if f.AvailableOnly && !c.Available {
			continue
		}
		if query != "" && !matchesQuery(&c, query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesQuery(c *models.Creator, query string) bool {
	if strings.Contains(strings.ToLower(c.DisplayName), query) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Category), query) {
		return true
	}
	for _, p := range c.Platforms {
		if strings.Contains(strings.ToLower(p.Handle), query) {
			return true
		}
	}
	return false
}
