package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/models"
	"github.com/influenzerflow/backend/internal/repositories"
	"go.uber.org/zap"
)

// PerformanceService computes the dashboard aggregates. Everything is
// derived on read from campaigns, negotiations and communication counts;
// nothing is cached or precomputed.
type PerformanceService struct {
	campaignRepo      *repositories.CampaignRepo
	negotiationRepo   *repositories.NegotiationRepo
	communicationRepo *repositories.CommunicationRepo
	creatorRepo       *repositories.CreatorRepo
	log               *zap.Logger
}

func NewPerformanceService(
	campaignRepo *repositories.CampaignRepo,
	negotiationRepo *repositories.NegotiationRepo,
	communicationRepo *repositories.CommunicationRepo,
	creatorRepo *repositories.CreatorRepo,
	log *zap.Logger,
) *PerformanceService {
	return &PerformanceService{
		campaignRepo:      campaignRepo,
		negotiationRepo:   negotiationRepo,
		communicationRepo: communicationRepo,
		creatorRepo:       creatorRepo,
		log:               log,
	}
}

// Summary is the brand-level headline block.
type Summary struct {
	TotalCampaigns    int            `json:"total_campaigns"`
	CurrentCampaigns  int            `json:"current_campaigns"`
	PastCampaigns     int            `json:"past_campaigns"`
	TotalNegotiations int            `json:"total_negotiations"`
	StatusCounts      map[string]int `json:"status_counts"`
	AcceptedDeals     int            `json:"accepted_deals"`
	TotalSpend        float64        `json:"total_spend"`
	EmailsSent        int            `json:"emails_sent"`
	CallsPlaced       int            `json:"calls_placed"`
}

// CampaignPerformance is one row of the per-campaign chart.
type CampaignPerformance struct {
	Campaign      models.Campaign `json:"campaign"`
	Current       bool            `json:"current"`
	Negotiations  int             `json:"negotiations"`
	StatusCounts  map[string]int  `json:"status_counts"`
	AcceptedDeals int             `json:"accepted_deals"`
	Spend         float64         `json:"spend"`
	Emails        int             `json:"emails"`
	Calls         int             `json:"calls"`
}

// dealRate picks the amount an accepted negotiation settles at: final rate
// first, then counter, then the original proposal.
func dealRate(n *models.Negotiation) float64 {
	for _, s := range []*string{n.FinalRate, n.CounterRate, n.ProposedRate} {
		if s == nil {
			continue
		}
		if v, err := strconv.ParseFloat(*s, 64); err == nil {
			return v
		}
	}
	return 0
}

// latestStatusByCampaign returns the status of each campaign's most recent
// negotiation. The list comes back ordered newest-first, so the first hit
// per campaign wins.
func latestStatusByCampaign(negotiations []models.Negotiation) map[uuid.UUID]*string {
	out := make(map[uuid.UUID]*string)
	for i := range negotiations {
		n := &negotiations[i]
		if _, seen := out[n.CampaignID]; !seen {
			status := n.Status
			out[n.CampaignID] = &status
		}
	}
	return out
}

func (s *PerformanceService) load(ctx context.Context, brandID uuid.UUID) ([]models.Campaign, []models.Negotiation, map[uuid.UUID]int, map[uuid.UUID]int, error) {
	campaigns, err := s.campaignRepo.List(ctx, repositories.CampaignFilter{BrandID: &brandID, Limit: 100})
	if err != nil {
		return nil, nil, nil, nil, err
	}
	negotiations, err := s.negotiationRepo.List(ctx, repositories.NegotiationFilter{BrandID: &brandID, Limit: 200})
	if err != nil {
		return nil, nil, nil, nil, err
	}

	ids := make([]uuid.UUID, 0, len(negotiations))
	for _, n := range negotiations {
		ids = append(ids, n.ID)
	}
	emails, calls, err := s.communicationRepo.CountByNegotiations(ctx, ids)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return campaigns, negotiations, emails, calls, nil
}

func (s *PerformanceService) Summary(ctx context.Context, brandID uuid.UUID) (*Summary, error) {
	campaigns, negotiations, emails, calls, err := s.load(ctx, brandID)
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		TotalCampaigns:    len(campaigns),
		TotalNegotiations: len(negotiations),
		StatusCounts:      make(map[string]int),
	}

	latest := latestStatusByCampaign(negotiations)
	now := time.Now()
	for i := range campaigns {
		if campaigns[i].IsCurrent(latest[campaigns[i].ID], now) {
			sum.CurrentCampaigns++
		} else {
			sum.PastCampaigns++
		}
	}

	for i := range negotiations {
		n := &negotiations[i]
		sum.StatusCounts[n.Status]++
		if n.Status == models.NegotiationStatusAccepted {
			sum.AcceptedDeals++
			sum.TotalSpend += dealRate(n)
		}
		sum.EmailsSent += emails[n.ID]
		sum.CallsPlaced += calls[n.ID]
	}
	return sum, nil
}

// ForCampaign builds the performance row of a single owned campaign.
func (s *PerformanceService) ForCampaign(ctx context.Context, brandID, campaignID uuid.UUID) (*CampaignPerformance, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign not found")
	}
	if campaign.BrandID != brandID {
		return nil, fmt.Errorf("campaign not found")
	}

	negotiations, err := s.negotiationRepo.List(ctx, repositories.NegotiationFilter{CampaignID: &campaignID, Limit: 200})
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(negotiations))
	for _, n := range negotiations {
		ids = append(ids, n.ID)
	}
	emails, calls, err := s.communicationRepo.CountByNegotiations(ctx, ids)
	if err != nil {
		return nil, err
	}

	var latest *string
	if len(negotiations) > 0 {
		latest = &negotiations[0].Status
	}
	row := &CampaignPerformance{
		Campaign:     *campaign,
		Current:      campaign.IsCurrent(latest, time.Now()),
		StatusCounts: make(map[string]int),
	}
	for i := range negotiations {
		n := &negotiations[i]
		row.Negotiations++
		row.StatusCounts[n.Status]++
		if n.Status == models.NegotiationStatusAccepted {
			row.AcceptedDeals++
			row.Spend += dealRate(n)
		}
		row.Emails += emails[n.ID]
		row.Calls += calls[n.ID]
	}
	return row, nil
}

// PerCampaign returns one performance row per campaign, current campaigns
// first, preserving the repo's newest-first order within each group.
func (s *PerformanceService) PerCampaign(ctx context.Context, brandID uuid.UUID) ([]CampaignPerformance, error) {
	campaigns, negotiations, emails, calls, err := s.load(ctx, brandID)
	if err != nil {
		return nil, err
	}

	byCampaign := make(map[uuid.UUID][]*models.Negotiation)
	for i := range negotiations {
		n := &negotiations[i]
		byCampaign[n.CampaignID] = append(byCampaign[n.CampaignID], n)
	}

	latest := latestStatusByCampaign(negotiations)
	now := time.Now()

	current := make([]CampaignPerformance, 0, len(campaigns))
	past := make([]CampaignPerformance, 0, len(campaigns))
	for _, c := range campaigns {
		row := CampaignPerformance{
			Campaign:     c,
			Current:      c.IsCurrent(latest[c.ID], now),
			StatusCounts: make(map[string]int),
		}
		for _, n := range byCampaign[c.ID] {
			row.Negotiations++
			row.StatusCounts[n.Status]++
			if n.Status == models.NegotiationStatusAccepted {
				row.AcceptedDeals++
				row.Spend += dealRate(n)
			}
			row.Emails += emails[n.ID]
			row.Calls += calls[n.ID]
		}
		if row.Current {
			current = append(current, row)
		} else {
			past = append(past, row)
		}
	}
	return append(current, past...), nil
}
