package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/events"
	"github.com/influenzerflow/backend/internal/models"
	"go.uber.org/zap"
)

// ErrNoPhoneNumber is returned when an agent call is requested for a creator
// with no discovered phone number on the assignment record.
var ErrNoPhoneNumber = errors.New("no phone number on record for this creator")

// ErrAgentDispatch marks a failure of the external agent call that happened
// after the local records were already written. Nothing is rolled back; the
// caller surfaces the error and the records stand.
var ErrAgentDispatch = errors.New("agent dispatch failed")

type campaignGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
}

type negotiationStore interface {
	GetByCampaignAndCreator(ctx context.Context, campaignID, creatorID uuid.UUID) (*models.Negotiation, error)
	Create(ctx context.Context, n *models.Negotiation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type assignmentGetter interface {
	GetByBrandAndCreator(ctx context.Context, brandID, creatorID uuid.UUID) (*models.CreatorAssignment, error)
}

type communicationStore interface {
	CreateEmail(ctx context.Context, c *models.Communication) error
	CreateVoice(ctx context.Context, v *models.VoiceCommunication) error
}

type agentAPI interface {
	StartNegotiation(ctx context.Context, negotiationID uuid.UUID) error
	InitiateCall(ctx context.Context, negotiationID uuid.UUID, phoneNumber string) error
}

// OutreachService runs the two user-triggered outreach actions. Both follow
// the same shape: ensure a negotiation exists for the (campaign, creator)
// pair, log the communication, then fire the external agent call.
type OutreachService struct {
	campaigns      campaignGetter
	negotiations   negotiationStore
	assignments    assignmentGetter
	communications communicationStore
	agent          agentAPI
	publisher      events.Publisher
	log            *zap.Logger
}

func NewOutreachService(
	campaigns campaignGetter,
	negotiations negotiationStore,
	assignments assignmentGetter,
	communications communicationStore,
	agent agentAPI,
	publisher events.Publisher,
	log *zap.Logger,
) *OutreachService {
	return &OutreachService{
		campaigns:      campaigns,
		negotiations:   negotiations,
		assignments:    assignments,
		communications: communications,
		agent:          agent,
		publisher:      publisher,
		log:            log,
	}
}

// ensureNegotiation finds the pair's negotiation or lazily creates one with
// deliverables derived 1:1 from the campaign requirements. Existing
// negotiations get their status patched in place.
func (s *OutreachService) ensureNegotiation(ctx context.Context, brandID uuid.UUID, campaign *models.Campaign, creatorID uuid.UUID, status string) (*models.Negotiation, error) {
	neg, err := s.negotiations.GetByCampaignAndCreator(ctx, campaign.ID, creatorID)
	if err != nil {
		return nil, err
	}

	if neg == nil {
		rate := campaign.BudgetPerCreator
		neg = &models.Negotiation{
			CampaignID:   campaign.ID,
			CreatorID:    creatorID,
			BrandID:      brandID,
			Status:       status,
			ProposedRate: &rate,
			Deliverables: models.DeriveDeliverables(campaign.Requirements, campaign.EndDate),
		}
		if err := s.negotiations.Create(ctx, neg); err != nil {
			return nil, err
		}
		_ = s.publisher.Publish(ctx, events.StreamNegotiations, events.Event{
			Type:    events.EventNegotiationCreated,
			BrandID: brandID.String(),
			Payload: map[string]any{
				"negotiation_id": neg.ID.String(),
				"campaign_id":    campaign.ID.String(),
				"creator_id":     creatorID.String(),
				"status":         status,
			},
		})
		return neg, nil
	}

	oldStatus := neg.Status
	if err := s.negotiations.UpdateStatus(ctx, neg.ID, status); err != nil {
		return nil, err
	}
	neg.Status = status
	_ = s.publisher.Publish(ctx, events.StreamNegotiations, events.Event{
		Type:    events.EventNegotiationStatusChanged,
		BrandID: brandID.String(),
		Payload: map[string]any{
			"negotiation_id": neg.ID.String(),
			"old_status":     oldStatus,
			"new_status":     status,
		},
	})
	return neg, nil
}

func (s *OutreachService) getOwnedCampaign(ctx context.Context, brandID, campaignID uuid.UUID) (*models.Campaign, error) {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign not found")
	}
	if campaign.BrandID != brandID {
		return nil, fmt.Errorf("campaign not found")
	}
	return campaign, nil
}

// SendAutoEmail triggers AI email outreach for a (campaign, creator) pair.
// The local negotiation and communication rows are written first; the agent
// call afterwards is best-effort and a failure there leaves them in place.
func (s *OutreachService) SendAutoEmail(ctx context.Context, brandID, campaignID, creatorID uuid.UUID) (*models.Negotiation, error) {
	campaign, err := s.getOwnedCampaign(ctx, brandID, campaignID)
	if err != nil {
		return nil, err
	}

	neg, err := s.ensureNegotiation(ctx, brandID, campaign, creatorID, models.NegotiationStatusEmailSent)
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Collaboration opportunity: %s", campaign.Name)
	comm := &models.Communication{
		NegotiationID: neg.ID,
		Status:        models.CommunicationStatusQueued,
		Subject:       &subject,
		AIGenerated:   true,
	}
	if err := s.communications.CreateEmail(ctx, comm); err != nil {
		return nil, err
	}
	_ = s.publisher.Publish(ctx, events.StreamNegotiations, events.Event{
		Type:    events.EventCommunicationLogged,
		BrandID: brandID.String(),
		Payload: map[string]any{
			"negotiation_id":   neg.ID.String(),
			"communication_id": comm.ID.String(),
		},
	})

	if err := s.agent.StartNegotiation(ctx, neg.ID); err != nil {
		s.log.Warn("start-negotiation dispatch failed after local write",
			zap.String("negotiation_id", neg.ID.String()), zap.Error(err))
		return neg, fmt.Errorf("%w: %v", ErrAgentDispatch, err)
	}

	return neg, nil
}

// InitiateAgentCall triggers a voice-agent call for a (campaign, creator)
// pair. It fails fast — before any write — when the assignment has no
// discovered phone number.
func (s *OutreachService) InitiateAgentCall(ctx context.Context, brandID, campaignID, creatorID uuid.UUID) (*models.Negotiation, error) {
	campaign, err := s.getOwnedCampaign(ctx, brandID, campaignID)
	if err != nil {
		return nil, err
	}

	assignment, err := s.assignments.GetByBrandAndCreator(ctx, brandID, creatorID)
	if err != nil {
		return nil, err
	}
	if assignment == nil || assignment.DiscoveredPhone == nil || *assignment.DiscoveredPhone == "" {
		return nil, ErrNoPhoneNumber
	}
	phone := *assignment.DiscoveredPhone

	neg, err := s.ensureNegotiation(ctx, brandID, campaign, creatorID, models.NegotiationStatusPhoneContacted)
	if err != nil {
		return nil, err
	}

	call := &models.VoiceCommunication{
		NegotiationID: neg.ID,
		Status:        models.CallStatusInitiated,
		PhoneNumber:   phone,
		AIAgent:       true,
	}
	if err := s.communications.CreateVoice(ctx, call); err != nil {
		return nil, err
	}
	_ = s.publisher.Publish(ctx, events.StreamNegotiations, events.Event{
		Type:    events.EventVoiceCommunicationLogged,
		BrandID: brandID.String(),
		Payload: map[string]any{
			"negotiation_id": neg.ID.String(),
			"call_id":        call.ID.String(),
		},
	})

	if err := s.agent.InitiateCall(ctx, neg.ID, phone); err != nil {
		s.log.Warn("initiate-call dispatch failed after local write",
			zap.String("negotiation_id", neg.ID.String()), zap.Error(err))
		return neg, fmt.Errorf("%w: %v", ErrAgentDispatch, err)
	}

	return neg, nil
}
