package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/models"
)

func sampleCreators() []models.Creator {
	return []models.Creator{
		{
			ID: uuid.New(), DisplayName: "Alice Vlogs", Category: "tech",
			BaseRate: "500.00", Available: true,
			Platforms: []models.CreatorPlatform{
				{Platform: models.PlatformYouTube, Handle: "alicevlogs", Followers: 120000},
				{Platform: models.PlatformInstagram, Handle: "alice.gram", Followers: 30000},
			},
		},
		{
			ID: uuid.New(), DisplayName: "Bob Cooks", Category: "food",
			BaseRate: "1500.00", Available: true,
			Platforms: []models.CreatorPlatform{
				{Platform: models.PlatformInstagram, Handle: "bobcooks", Followers: 80000},
			},
		},
		{
			ID: uuid.New(), DisplayName: "Carol Fit", Category: "fitness",
			BaseRate: "300.00", Available: false,
			Platforms: []models.CreatorPlatform{
				{Platform: models.PlatformTikTok, Handle: "carolfit", Followers: 500000},
			},
		},
		{
			ID: uuid.New(), DisplayName: "Dmitry Tech", Category: "tech",
			BaseRate: "not-a-number", Available: true,
			Platforms: []models.CreatorPlatform{
				{Platform: models.PlatformYouTube, Handle: "dmitrytech", Followers: 10000},
			},
		},
	}
}

func TestFilterCreators(t *testing.T) {
	creators := sampleCreators()

	tests := []struct {
		name   string
		filter CreatorFilter
		want   []string
	}{
		{
			name:   "zero filter returns everything",
			filter: CreatorFilter{},
			want:   []string{"Alice Vlogs", "Bob Cooks", "Carol Fit", "Dmitry Tech"},
		},
		{
			name:   "category",
			filter: CreatorFilter{Category: "tech"},
			want:   []string{"Alice Vlogs", "Dmitry Tech"},
		},
		{
			name:   "category is case-insensitive",
			filter: CreatorFilter{Category: "TECH"},
			want:   []string{"Alice Vlogs", "Dmitry Tech"},
		},
		{
			name:   "platform",
			filter: CreatorFilter{Platform: models.PlatformInstagram},
			want:   []string{"Alice Vlogs", "Bob Cooks"},
		},
		{
			name:   "min followers uses total when no platform set",
			filter: CreatorFilter{MinFollowers: 100000},
			want:   []string{"Alice Vlogs", "Carol Fit"},
		},
		{
			name:   "min followers scoped to platform",
			filter: CreatorFilter{Platform: models.PlatformInstagram, MinFollowers: 50000},
			want:   []string{"Bob Cooks"},
		},
		{
			name:   "max budget drops unparseable rates",
			filter: CreatorFilter{MaxBudget: 600},
			want:   []string{"Alice Vlogs", "Carol Fit"},
		},
		{
			name:   "available only",
			filter: CreatorFilter{AvailableOnly: true},
			want:   []string{"Alice Vlogs", "Bob Cooks", "Dmitry Tech"},
		},
		{
			name:   "query matches name",
			filter: CreatorFilter{Query: "bob"},
			want:   []string{"Bob Cooks"},
		},
		{
			name:   "query matches handle",
			filter: CreatorFilter{Query: "alice.gram"},
			want:   []string{"Alice Vlogs"},
		},
		{
			name:   "query matches category",
			filter: CreatorFilter{Query: "fitness"},
			want:   []string{"Carol Fit"},
		},
		{
			name: "all filters combine",
			filter: CreatorFilter{
				Category:      "tech",
				Platform:      models.PlatformYouTube,
				MinFollowers:  50000,
				MaxBudget:     1000,
				AvailableOnly: true,
				Query:         "alice",
			},
			want: []string{"Alice Vlogs"},
		},
		{
			name:   "no match yields empty set",
			filter: CreatorFilter{Category: "gaming"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCreators(creators, tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d creators, want %d", len(got), len(tt.want))
			}
			for i, c := range got {
				if c.DisplayName != tt.want[i] {
					t.Errorf("result[%d] = %q, want %q", i, c.DisplayName, tt.want[i])
				}
			}
		})
	}
}

func TestFilterCreatorsClearRestoresFullSet(t *testing.T) {
	creators := sampleCreators()

	narrowed := FilterCreators(creators, CreatorFilter{Category: "food"})
	if len(narrowed) != 1 {
		t.Fatalf("narrowed set has %d creators, want 1", len(narrowed))
	}

	restored := FilterCreators(creators, CreatorFilter{})
	if len(restored) != len(creators) {
		t.Fatalf("cleared filter returned %d creators, want %d", len(restored), len(creators))
	}
}
