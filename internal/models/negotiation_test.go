package models

import (
	"testing"
	"time"
)

func TestDeriveDeliverables(t *testing.T) {
	deadline := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	reqs := []PlatformRequirement{
		{Platform: PlatformInstagram, ContentType: "reel", Quantity: 2},
		{Platform: PlatformYouTube, ContentType: "video", Quantity: 1},
		{Platform: PlatformTikTok, ContentType: "short", Quantity: 3},
	}

	out := DeriveDeliverables(reqs, deadline)

	if len(out) != len(reqs) {
		t.Fatalf("expected %d deliverables, got %d", len(reqs), len(out))
	}
	for i, d := range out {
		if d.Platform != reqs[i].Platform || d.ContentType != reqs[i].ContentType || d.Quantity != reqs[i].Quantity {
			t.Errorf("deliverable %d does not mirror requirement: %+v vs %+v", i, d, reqs[i])
		}
		if d.Status != DeliverableStatusPending {
			t.Errorf("deliverable %d status = %q, want %q", i, d.Status, DeliverableStatusPending)
		}
		if d.Deadline == nil || !d.Deadline.Equal(deadline) {
			t.Errorf("deliverable %d deadline = %v, want %v", i, d.Deadline, deadline)
		}
	}
}

func TestDeriveDeliverablesEmpty(t *testing.T) {
	out := DeriveDeliverables(nil, time.Now())
	if len(out) != 0 {
		t.Errorf("expected no deliverables for empty requirements, got %d", len(out))
	}
}

func TestIsClosedNegotiationStatus(t *testing.T) {
	closed := []string{NegotiationStatusRejected, NegotiationStatusCancelled}
	open := []string{
		NegotiationStatusInitiated, NegotiationStatusEmailSent,
		NegotiationStatusPhoneContacted, NegotiationStatusInProgress,
		NegotiationStatusDealProposed, NegotiationStatusAccepted,
	}

	for _, s := range closed {
		if !IsClosedNegotiationStatus(s) {
			t.Errorf("status %q should be closed", s)
		}
	}
	for _, s := range open {
		if IsClosedNegotiationStatus(s) {
			t.Errorf("status %q should not be closed", s)
		}
	}
}

func TestIsValidNegotiationStatus(t *testing.T) {
	for _, s := range AllNegotiationStatuses {
		if !IsValidNegotiationStatus(s) {
			t.Errorf("status %q should be valid", s)
		}
	}
	if IsValidNegotiationStatus("ghosted") {
		t.Error("unknown status should not be valid")
	}
}
