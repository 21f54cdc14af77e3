package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/models"
	"github.com/influenzerflow/backend/internal/repositories"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// AssignmentService owns the creator↔campaign bookkeeping: the idempotent
// add, the delete-on-empty removal, and the joined views built on top.
type AssignmentService struct {
	assignmentRepo  *repositories.AssignmentRepo
	creatorRepo     *repositories.CreatorRepo
	campaignRepo    *repositories.CampaignRepo
	negotiationRepo *repositories.NegotiationRepo
	log             *zap.Logger
}

func NewAssignmentService(
	assignmentRepo *repositories.AssignmentRepo,
	creatorRepo *repositories.CreatorRepo,
	campaignRepo *repositories.CampaignRepo,
	negotiationRepo *repositories.NegotiationRepo,
	log *zap.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo:  assignmentRepo,
		creatorRepo:     creatorRepo,
		campaignRepo:    campaignRepo,
		negotiationRepo: negotiationRepo,
		log:             log,
	}
}

func (s *AssignmentService) checkCampaign(ctx context.Context, brandID, campaignID uuid.UUID) error {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("campaign not found")
	}
	if campaign.BrandID != brandID {
		return fmt.Errorf("campaign not found")
	}
	return nil
}

// Assign adds the creator to the campaign. Reports true when the creator was
// already assigned to it — the add is idempotent either way.
func (s *AssignmentService) Assign(ctx context.Context, brandID, campaignID, creatorID uuid.UUID) (bool, error) {
	if err := s.checkCampaign(ctx, brandID, campaignID); err != nil {
		return false, err
	}
	if _, err := s.creatorRepo.GetByID(ctx, creatorID); err != nil {
		return false, fmt.Errorf("creator not found")
	}

	return s.assignmentRepo.AddCampaign(ctx, brandID, creatorID, campaignID)
}

// Remove takes the campaign out of the creator's assignment; the assignment
// row itself is deleted once its campaign list becomes empty.
func (s *AssignmentService) Remove(ctx context.Context, brandID, campaignID, creatorID uuid.UUID) error {
	if err := s.checkCampaign(ctx, brandID, campaignID); err != nil {
		return err
	}
	return s.assignmentRepo.RemoveCampaign(ctx, brandID, creatorID, campaignID)
}

func (s *AssignmentService) IsAssigned(ctx context.Context, brandID, creatorID, campaignID uuid.UUID) (bool, error) {
	a, err := s.assignmentRepo.GetByBrandAndCreator(ctx, brandID, creatorID)
	if err != nil {
		return false, err
	}
	return a != nil && a.HasCampaign(campaignID), nil
}

func (s *AssignmentService) Get(ctx context.Context, brandID, creatorID uuid.UUID) (*models.CreatorAssignment, error) {
	a, err := s.assignmentRepo.GetByBrandAndCreator(ctx, brandID, creatorID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("assignment not found")
	}
	return a, nil
}

func (s *AssignmentService) List(ctx context.Context, brandID uuid.UUID) ([]models.CreatorAssignment, error) {
	return s.assignmentRepo.ListByBrand(ctx, brandID)
}

func (s *AssignmentService) SetDiscoveredPhone(ctx context.Context, brandID, creatorID uuid.UUID, phone string) error {
	err := s.assignmentRepo.SetDiscoveredPhone(ctx, brandID, creatorID, phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("assignment not found")
	}
	return err
}

// ContactedCreator is the outreach-page aggregate: an assignment joined with
// its creator record and all negotiations for that creator.
type ContactedCreator struct {
	Creator      models.Creator           `json:"creator"`
	Assignment   models.CreatorAssignment `json:"assignment"`
	Negotiations []models.Negotiation     `json:"negotiations"`
}

// ListContacted joins assignments with creators and negotiations. An
// assignment whose creator record no longer exists is silently dropped —
// there is no referential-integrity promise beyond this lookup.
func (s *AssignmentService) ListContacted(ctx context.Context, brandID uuid.UUID) ([]ContactedCreator, error) {
	assignments, err := s.assignmentRepo.ListByBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return []ContactedCreator{}, nil
	}

	creators, err := s.creatorRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	creatorsByID := make(map[uuid.UUID]models.Creator, len(creators))
	for _, c := range creators {
		creatorsByID[c.ID] = c
	}

	negotiations, err := s.negotiationRepo.List(ctx, repositories.NegotiationFilter{BrandID: &brandID, Limit: 200})
	if err != nil {
		return nil, err
	}
	negsByCreator := make(map[uuid.UUID][]models.Negotiation)
	for _, n := range negotiations {
		negsByCreator[n.CreatorID] = append(negsByCreator[n.CreatorID], n)
	}

	out := make([]ContactedCreator, 0, len(assignments))
	for _, a := range assignments {
		creator, ok := creatorsByID[a.CreatorID]
		if !ok {
			continue // dangling creator id
		}
		negs := negsByCreator[a.CreatorID]
		if negs == nil {
			negs = []models.Negotiation{}
		}
		out = append(out, ContactedCreator{
			Creator:      creator,
			Assignment:   a,
			Negotiations: negs,
		})
	}
	return out, nil
}
