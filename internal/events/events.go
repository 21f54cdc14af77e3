package events

import "context"

// Event types pushed to connected dashboards
const (
	EventNegotiationCreated       = "negotiation_created"
	EventNegotiationStatusChanged = "negotiation_status_changed"
	EventCommunicationLogged      = "communication_logged"
	EventVoiceCommunicationLogged = "voice_communication_logged"
)

// StreamNegotiations is the redis channel carrying all dashboard events.
const StreamNegotiations = "events:negotiation"

type Event struct {
	Type    string         `json:"type"`
	BrandID string         `json:"brand_id"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
