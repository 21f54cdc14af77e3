package models

import (
	"time"

	"github.com/google/uuid"
)

// Negotiation statuses. Any status may be set from any prior one — the
// source UI imposes no transition graph and that laxness is kept on purpose.
const (
	NegotiationStatusInitiated      = "initiated"
	NegotiationStatusEmailSent      = "email_sent"
	NegotiationStatusPhoneContacted = "phone_contacted"
	NegotiationStatusInProgress     = "in_progress"
	NegotiationStatusDealProposed   = "deal_proposed"
	NegotiationStatusAccepted       = "accepted"
	NegotiationStatusRejected       = "rejected"
	NegotiationStatusCancelled      = "cancelled"
)

var AllNegotiationStatuses = []string{
	NegotiationStatusInitiated, NegotiationStatusEmailSent,
	NegotiationStatusPhoneContacted, NegotiationStatusInProgress,
	NegotiationStatusDealProposed, NegotiationStatusAccepted,
	NegotiationStatusRejected, NegotiationStatusCancelled,
}

func IsValidNegotiationStatus(s string) bool {
	for _, ns := range AllNegotiationStatuses {
		if ns == s {
			return true
		}
	}
	return false
}

// IsClosedNegotiationStatus reports whether a negotiation is over with no
// deal — rejected or cancelled.
func IsClosedNegotiationStatus(s string) bool {
	return s == NegotiationStatusRejected || s == NegotiationStatusCancelled
}

// Payment statuses on a negotiation. Money movement happens elsewhere; this
// is bookkeeping only.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Deliverable fulfillment statuses
const (
	DeliverableStatusPending   = "pending"
	DeliverableStatusSubmitted = "submitted"
	DeliverableStatusApproved  = "approved"
)

type Deliverable struct {
	Platform    string     `json:"platform"`
	ContentType string     `json:"content_type"`
	Quantity    int        `json:"quantity"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      string     `json:"status"`
}

// Negotiation links one (campaign, creator, brand) triple. It is created
// lazily by the first outreach action for the pair; later actions patch it
// in place.
type Negotiation struct {
	ID              uuid.UUID     `json:"id"`
	CampaignID      uuid.UUID     `json:"campaign_id"`
	CreatorID       uuid.UUID     `json:"creator_id"`
	BrandID         uuid.UUID     `json:"brand_id"`
	Status          string        `json:"status"`
	ProposedRate    *string       `json:"proposed_rate,omitempty"` // numeric as string
	CounterRate     *string       `json:"counter_rate,omitempty"`
	FinalRate       *string       `json:"final_rate,omitempty"`
	Deliverables    []Deliverable `json:"deliverables"`
	PaymentStatus   string        `json:"payment_status"`
	EscalationCount int           `json:"escalation_count"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// NegotiationWithCreator embeds Negotiation and adds creator info to avoid
// N+1 lookups in list views.
type NegotiationWithCreator struct {
	Negotiation
	CreatorName     *string `json:"creator_name,omitempty"`
	CreatorCategory *string `json:"creator_category,omitempty"`
}

// DeriveDeliverables maps campaign platform requirements 1:1 onto pending
// deliverables due by the campaign end date.
func DeriveDeliverables(reqs []PlatformRequirement, deadline time.Time) []Deliverable {
	out := make([]Deliverable, 0, len(reqs))
	for _, r := range reqs {
		d := deadline
		out = append(out, Deliverable{
			Platform:    r.Platform,
			ContentType: r.ContentType,
			Quantity:    r.Quantity,
			Deadline:    &d,
			Status:      DeliverableStatusPending,
		})
	}
	return out
}
