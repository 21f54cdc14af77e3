package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/events"
	"github.com/influenzerflow/backend/internal/models"
	"go.uber.org/zap"
)

type fakeCampaigns struct {
	campaigns map[uuid.UUID]*models.Campaign
}

func (f *fakeCampaigns) GetByID(_ context.Context, id uuid.UUID) (*models.Campaign, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return c, nil
}

type pairKey struct {
	campaignID uuid.UUID
	creatorID  uuid.UUID
}

type fakeNegotiations struct {
	byPair        map[pairKey]*models.Negotiation
	createCalls   int
	statusUpdates []string
}

func (f *fakeNegotiations) GetByCampaignAndCreator(_ context.Context, campaignID, creatorID uuid.UUID) (*models.Negotiation, error) {
	return f.byPair[pairKey{campaignID, creatorID}], nil
}

func (f *fakeNegotiations) Create(_ context.Context, n *models.Negotiation) error {
	f.createCalls++
	n.ID = uuid.New()
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	f.byPair[pairKey{n.CampaignID, n.CreatorID}] = n
	return nil
}

func (f *fakeNegotiations) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	f.statusUpdates = append(f.statusUpdates, status)
	for _, n := range f.byPair {
		if n.ID == id {
			n.Status = status
		}
	}
	return nil
}

type fakeAssignments struct {
	byCreator map[uuid.UUID]*models.CreatorAssignment
}

func (f *fakeAssignments) GetByBrandAndCreator(_ context.Context, _, creatorID uuid.UUID) (*models.CreatorAssignment, error) {
	return f.byCreator[creatorID], nil
}

type fakeCommunications struct {
	emails []*models.Communication
	calls  []*models.VoiceCommunication
}

func (f *fakeCommunications) CreateEmail(_ context.Context, c *models.Communication) error {
	c.ID = uuid.New()
	f.emails = append(f.emails, c)
	return nil
}

func (f *fakeCommunications) CreateVoice(_ context.Context, v *models.VoiceCommunication) error {
	v.ID = uuid.New()
	f.calls = append(f.calls, v)
	return nil
}

type fakeAgent struct {
	startCalls int
	callCalls  int
	fail       bool
}

func (f *fakeAgent) StartNegotiation(_ context.Context, _ uuid.UUID) error {
	f.startCalls++
	if f.fail {
		return errors.New("agent down")
	}
	return nil
}

func (f *fakeAgent) InitiateCall(_ context.Context, _ uuid.UUID, _ string) error {
	f.callCalls++
	if f.fail {
		return errors.New("agent down")
	}
	return nil
}

type fakePublisher struct {
	events []events.Event
}

func (f *fakePublisher) Publish(_ context.Context, _ string, e events.Event) error {
	f.events = append(f.events, e)
	return nil
}

type outreachFixture struct {
	svc            *OutreachService
	campaigns      *fakeCampaigns
	negotiations   *fakeNegotiations
	assignments    *fakeAssignments
	communications *fakeCommunications
	agent          *fakeAgent
	publisher      *fakePublisher

	brandID    uuid.UUID
	campaignID uuid.UUID
	creatorID  uuid.UUID
}

func newOutreachFixture() *outreachFixture {
	f := &outreachFixture{
		campaigns:      &fakeCampaigns{campaigns: map[uuid.UUID]*models.Campaign{}},
		negotiations:   &fakeNegotiations{byPair: map[pairKey]*models.Negotiation{}},
		assignments:    &fakeAssignments{byCreator: map[uuid.UUID]*models.CreatorAssignment{}},
		communications: &fakeCommunications{},
		agent:          &fakeAgent{},
		publisher:      &fakePublisher{},
		brandID:        uuid.New(),
		campaignID:     uuid.New(),
		creatorID:      uuid.New(),
	}
	f.campaigns.campaigns[f.campaignID] = &models.Campaign{
		ID:               f.campaignID,
		BrandID:          f.brandID,
		Name:             "Summer Launch",
		BudgetPerCreator: "750.00",
		Requirements: []models.PlatformRequirement{
			{Platform: models.PlatformInstagram, ContentType: "reel", Quantity: 2},
			{Platform: models.PlatformYouTube, ContentType: "video", Quantity: 1},
		},
		Status:  models.CampaignStatusActive,
		EndDate: time.Now().AddDate(0, 1, 0),
	}
	f.svc = NewOutreachService(f.campaigns, f.negotiations, f.assignments,
		f.communications, f.agent, f.publisher, zap.NewNop())
	return f
}

func (f *outreachFixture) withPhone(phone string) {
	f.assignments.byCreator[f.creatorID] = &models.CreatorAssignment{
		ID:              uuid.New(),
		BrandID:         f.brandID,
		CreatorID:       f.creatorID,
		CampaignIDs:     []uuid.UUID{f.campaignID},
		PhoneDiscovered: true,
		DiscoveredPhone: &phone,
	}
}

func TestSendAutoEmailCreatesNegotiation(t *testing.T) {
	f := newOutreachFixture()

	neg, err := f.svc.SendAutoEmail(context.Background(), f.brandID, f.campaignID, f.creatorID)
	if err != nil {
		t.Fatalf("SendAutoEmail: %v", err)
	}

	if f.negotiations.createCalls != 1 {
		t.Fatalf("created %d negotiations, want 1", f.negotiations.createCalls)
	}
	if neg.Status != models.NegotiationStatusEmailSent {
		t.Errorf("status = %q, want %q", neg.Status, models.NegotiationStatusEmailSent)
	}
	if neg.ProposedRate == nil || *neg.ProposedRate != "750.00" {
		t.Errorf("proposed rate = %v, want campaign budget", neg.ProposedRate)
	}
	if len(neg.Deliverables) != 2 {
		t.Fatalf("got %d deliverables, want 2", len(neg.Deliverables))
	}
	for _, d := range neg.Deliverables {
		if d.Status != models.DeliverableStatusPending {
			t.Errorf("deliverable status = %q, want pending", d.Status)
		}
	}
	if len(f.communications.emails) != 1 {
		t.Fatalf("logged %d emails, want 1", len(f.communications.emails))
	}
	if !f.communications.emails[0].AIGenerated {
		t.Error("email not marked ai generated")
	}
	if f.agent.startCalls != 1 {
		t.Errorf("agent start calls = %d, want 1", f.agent.startCalls)
	}
}

func TestSecondOutreachUpdatesExistingNegotiation(t *testing.T) {
	f := newOutreachFixture()
	f.withPhone("+15550100")

	first, err := f.svc.SendAutoEmail(context.Background(), f.brandID, f.campaignID, f.creatorID)
	if err != nil {
		t.Fatalf("SendAutoEmail: %v", err)
	}
	second, err := f.svc.InitiateAgentCall(context.Background(), f.brandID, f.campaignID, f.creatorID)
	if err != nil {
		t.Fatalf("InitiateAgentCall: %v", err)
	}

	if f.negotiations.createCalls != 1 {
		t.Fatalf("created %d negotiations, want 1", f.negotiations.createCalls)
	}
	if second.ID != first.ID {
		t.Error("second outreach created a new negotiation instead of reusing")
	}
	if second.Status != models.NegotiationStatusPhoneContacted {
		t.Errorf("status = %q, want %q", second.Status, models.NegotiationStatusPhoneContacted)
	}
	if len(f.negotiations.statusUpdates) != 1 {
		t.Errorf("status updates = %v, want exactly one", f.negotiations.statusUpdates)
	}
}

func TestInitiateCallWithoutPhoneHasNoSideEffects(t *testing.T) {
	f := newOutreachFixture()

	_, err := f.svc.InitiateAgentCall(context.Background(), f.brandID, f.campaignID, f.creatorID)
	if !errors.Is(err, ErrNoPhoneNumber) {
		t.Fatalf("err = %v, want ErrNoPhoneNumber", err)
	}

	if f.negotiations.createCalls != 0 {
		t.Error("negotiation was created despite missing phone")
	}
	if len(f.communications.calls) != 0 {
		t.Error("call was logged despite missing phone")
	}
	if f.agent.callCalls != 0 {
		t.Error("agent was dispatched despite missing phone")
	}
}

func TestInitiateCallEmptyPhoneStringFails(t *testing.T) {
	f := newOutreachFixture()
	f.withPhone("")

	_, err := f.svc.InitiateAgentCall(context.Background(), f.brandID, f.campaignID, f.creatorID)
	if !errors.Is(err, ErrNoPhoneNumber) {
		t.Fatalf("err = %v, want ErrNoPhoneNumber", err)
	}
}

func TestAgentDispatchFailureKeepsLocalRecords(t *testing.T) {
	f := newOutreachFixture()
	f.agent.fail = true

	neg, err := f.svc.SendAutoEmail(context.Background(), f.brandID, f.campaignID, f.creatorID)
	if !errors.Is(err, ErrAgentDispatch) {
		t.Fatalf("err = %v, want ErrAgentDispatch", err)
	}
	if neg == nil {
		t.Fatal("negotiation not returned alongside dispatch error")
	}
	if f.negotiations.createCalls != 1 {
		t.Error("negotiation row missing after dispatch failure")
	}
	if len(f.communications.emails) != 1 {
		t.Error("communication row missing after dispatch failure")
	}
}

func TestOutreachChecksCampaignOwnership(t *testing.T) {
	f := newOutreachFixture()
	otherBrand := uuid.New()

	_, err := f.svc.SendAutoEmail(context.Background(), otherBrand, f.campaignID, f.creatorID)
	if err == nil {
		t.Fatal("expected error for foreign campaign")
	}
	if got := err.Error(); got != "campaign not found" {
		t.Errorf("err = %q, want opaque not-found", got)
	}
	if f.negotiations.createCalls != 0 {
		t.Error("negotiation created for foreign campaign")
	}
}

func TestOutreachPublishesEvents(t *testing.T) {
	f := newOutreachFixture()

	if _, err := f.svc.SendAutoEmail(context.Background(), f.brandID, f.campaignID, f.creatorID); err != nil {
		t.Fatalf("SendAutoEmail: %v", err)
	}

	var types []string
	for _, e := range f.publisher.events {
		types = append(types, e.Type)
		if e.BrandID != f.brandID.String() {
			t.Errorf("event routed to brand %s, want %s", e.BrandID, f.brandID)
		}
	}
	want := fmt.Sprintf("[%s %s]", events.EventNegotiationCreated, events.EventCommunicationLogged)
	if got := fmt.Sprintf("%v", types); got != want {
		t.Errorf("published %v, want %v", got, want)
	}
}
