package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/events"
	"github.com/influenzerflow/backend/internal/models"
	"github.com/influenzerflow/backend/internal/repositories"
	"go.uber.org/zap"
)

type NegotiationService struct {
	negotiationRepo   *repositories.NegotiationRepo
	communicationRepo *repositories.CommunicationRepo
	publisher         events.Publisher
	log               *zap.Logger
}

func NewNegotiationService(
	negotiationRepo *repositories.NegotiationRepo,
	communicationRepo *repositories.CommunicationRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *NegotiationService {
	return &NegotiationService{
		negotiationRepo:   negotiationRepo,
		communicationRepo: communicationRepo,
		publisher:         publisher,
		log:               log,
	}
}

func (s *NegotiationService) GetByID(ctx context.Context, id, brandID uuid.UUID) (*models.Negotiation, error) {
	n, err := s.negotiationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("negotiation not found")
	}
	if n.BrandID != brandID {
		return nil, fmt.Errorf("negotiation not found")
	}
	return n, nil
}

func (s *NegotiationService) List(ctx context.Context, brandID uuid.UUID, f repositories.NegotiationFilter) ([]models.NegotiationWithCreator, error) {
	f.BrandID = &brandID
	return s.negotiationRepo.ListWithCreator(ctx, f)
}

// Update applies a partial patch after an ownership check. A status change
// is validated against the known set only; any known status may follow any
// other.
func (s *NegotiationService) Update(ctx context.Context, id, brandID uuid.UUID, p repositories.NegotiationPatch) (*models.Negotiation, error) {
	existing, err := s.GetByID(ctx, id, brandID)
	if err != nil {
		return nil, err
	}

	if p.Status != nil && !models.IsValidNegotiationStatus(*p.Status) {
		return nil, fmt.Errorf("invalid negotiation status %q", *p.Status)
	}

	if err := s.negotiationRepo.Update(ctx, id, p); err != nil {
		return nil, err
	}

	if p.Status != nil && *p.Status != existing.Status {
		_ = s.publisher.Publish(ctx, events.StreamNegotiations, events.Event{
			Type:    events.EventNegotiationStatusChanged,
			BrandID: brandID.String(),
			Payload: map[string]any{
				"negotiation_id": id.String(),
				"old_status":     existing.Status,
				"new_status":     *p.Status,
			},
		})
	}

	return s.negotiationRepo.GetByID(ctx, id)
}

// NegotiationCommunications bundles the email and call history of one
// negotiation for the timeline view.
type NegotiationCommunications struct {
	Emails []models.Communication      `json:"emails"`
	Calls  []models.VoiceCommunication `json:"calls"`
}

func (s *NegotiationService) Communications(ctx context.Context, id, brandID uuid.UUID) (*NegotiationCommunications, error) {
	if _, err := s.GetByID(ctx, id, brandID); err != nil {
		return nil, err
	}

	emails, err := s.communicationRepo.ListEmailByNegotiation(ctx, id)
	if err != nil {
		return nil, err
	}
	calls, err := s.communicationRepo.ListVoiceByNegotiation(ctx, id)
	if err != nil {
		return nil, err
	}
	if emails == nil {
		emails = []models.Communication{}
	}
	if calls == nil {
		calls = []models.VoiceCommunication{}
	}
	return &NegotiationCommunications{Emails: emails, Calls: calls}, nil
}
