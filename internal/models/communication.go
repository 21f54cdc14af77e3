package models

import (
	"time"

	"github.com/google/uuid"
)

// Communication statuses
const (
	CommunicationStatusQueued    = "queued"
	CommunicationStatusSent      = "sent"
	CommunicationStatusDelivered = "delivered"
	CommunicationStatusFailed    = "failed"
)

// Voice call statuses
const (
	CallStatusInitiated = "initiated"
	CallStatusCompleted = "completed"
	CallStatusNoAnswer  = "no_answer"
	CallStatusFailed    = "failed"
)

// Communication is one append-only email outreach event on a negotiation.
type Communication struct {
	ID            uuid.UUID `json:"id"`
	NegotiationID uuid.UUID `json:"negotiation_id"`
	Status        string    `json:"status"`
	Subject       *string   `json:"subject,omitempty"`
	Content       *string   `json:"content,omitempty"`
	AIGenerated   bool      `json:"ai_generated"`
	CreatedAt     time.Time `json:"created_at"`
}

// VoiceCommunication is one append-only outbound call event on a negotiation.
type VoiceCommunication struct {
	ID              uuid.UUID `json:"id"`
	NegotiationID   uuid.UUID `json:"negotiation_id"`
	Status          string    `json:"status"`
	PhoneNumber     string    `json:"phone_number"`
	Transcript      *string   `json:"transcript,omitempty"`
	DurationSeconds *int      `json:"duration_seconds,omitempty"`
	AIAgent         bool      `json:"ai_agent"`
	CreatedAt       time.Time `json:"created_at"`
}
