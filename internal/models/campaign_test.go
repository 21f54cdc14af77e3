package models

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestCampaignIsCurrent(t *testing.T) {
	today := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		status    string
		endDate   time.Time
		negStatus *string
		expected  bool
	}{
		// Status alone keeps a campaign current regardless of dates
		{"active with past end date", CampaignStatusActive, today.AddDate(0, -1, 0), nil, true},
		{"draft with past end date", CampaignStatusDraft, today.AddDate(0, -1, 0), nil, true},

		// Other statuses fall back to the end-date check
		{"completed ending tomorrow", CampaignStatusCompleted, today.AddDate(0, 0, 1), nil, true},
		{"completed ended yesterday", CampaignStatusCompleted, today.AddDate(0, 0, -1), nil, false},
		{"negotiating ending later", CampaignStatusNegotiating, today.AddDate(0, 1, 0), nil, true},
		{"cancelled ended last week", CampaignStatusCancelled, today.AddDate(0, 0, -7), nil, false},

		// Boundary: end date today counts as current (today-or-later)
		{"completed ending today midnight", CampaignStatusCompleted, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), nil, true},
		{"completed ending today evening", CampaignStatusCompleted, time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC), nil, true},
		{"completed ended end of yesterday", CampaignStatusCompleted, time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC), nil, false},

		// A closed negotiation overrides everything
		{"active but negotiation rejected", CampaignStatusActive, today.AddDate(0, 1, 0), strPtr(NegotiationStatusRejected), false},
		{"draft but negotiation cancelled", CampaignStatusDraft, today.AddDate(0, 1, 0), strPtr(NegotiationStatusCancelled), false},
		{"active with accepted negotiation", CampaignStatusActive, today.AddDate(0, 1, 0), strPtr(NegotiationStatusAccepted), true},
		{"completed ending today with in_progress negotiation", CampaignStatusCompleted, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), strPtr(NegotiationStatusInProgress), true},
		{"completed ended yesterday with email_sent negotiation", CampaignStatusCompleted, today.AddDate(0, 0, -1), strPtr(NegotiationStatusEmailSent), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Campaign{Status: tt.status, EndDate: tt.endDate}
			got := c.IsCurrent(tt.negStatus, today)
			if got != tt.expected {
				t.Errorf("IsCurrent(status=%s, end=%s, neg=%v) = %v, want %v",
					tt.status, tt.endDate.Format("2006-01-02"), tt.negStatus, got, tt.expected)
			}
		})
	}
}

func TestIsValidCampaignStatus(t *testing.T) {
	for _, s := range AllCampaignStatuses {
		if !IsValidCampaignStatus(s) {
			t.Errorf("status %q should be valid", s)
		}
	}
	if IsValidCampaignStatus("archived") {
		t.Error("unknown status should not be valid")
	}
	if IsValidCampaignStatus("") {
		t.Error("empty status should not be valid")
	}
}
