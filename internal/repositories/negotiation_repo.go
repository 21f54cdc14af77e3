package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NegotiationRepo struct {
	pool *pgxpool.Pool
}

func NewNegotiationRepo(pool *pgxpool.Pool) *NegotiationRepo {
	return &NegotiationRepo{pool: pool}
}

const negotiationColumns = `id, campaign_id, creator_id, brand_id, status, proposed_rate,
	counter_rate, final_rate, deliverables, payment_status, escalation_count, created_at, updated_at`

func scanNegotiation(row pgx.Row, n *models.Negotiation) error {
	var delivBytes []byte
	err := row.Scan(&n.ID, &n.CampaignID, &n.CreatorID, &n.BrandID, &n.Status, &n.ProposedRate,
		&n.CounterRate, &n.FinalRate, &delivBytes, &n.PaymentStatus, &n.EscalationCount,
		&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return err
	}
	_ = json.Unmarshal(delivBytes, &n.Deliverables)
	return nil
}

func (r *NegotiationRepo) Create(ctx context.Context, n *models.Negotiation) error {
	delivBytes, _ := json.Marshal(n.Deliverables)
	if n.PaymentStatus == "" {
		n.PaymentStatus = models.PaymentStatusPending
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO negotiations (campaign_id, creator_id, brand_id, status, proposed_rate, deliverables, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, n.CampaignID, n.CreatorID, n.BrandID, n.Status, n.ProposedRate, delivBytes, n.PaymentStatus,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

func (r *NegotiationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Negotiation, error) {
	var n models.Negotiation
	err := scanNegotiation(r.pool.QueryRow(ctx,
		`SELECT `+negotiationColumns+` FROM negotiations WHERE id = $1`, id), &n)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// GetByCampaignAndCreator returns nil (no error) when the pair has no
// negotiation yet — outreach creates one lazily in that case.
func (r *NegotiationRepo) GetByCampaignAndCreator(ctx context.Context, campaignID, creatorID uuid.UUID) (*models.Negotiation, error) {
	var n models.Negotiation
	err := scanNegotiation(r.pool.QueryRow(ctx,
		`SELECT `+negotiationColumns+` FROM negotiations WHERE campaign_id = $1 AND creator_id = $2
		 ORDER BY created_at DESC LIMIT 1`, campaignID, creatorID), &n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *NegotiationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE negotiations SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}

// NegotiationPatch carries the partial-merge fields of an update; nil fields
// keep their stored value.
type NegotiationPatch struct {
	Status          *string
	ProposedRate    *string
	CounterRate     *string
	FinalRate       *string
	Deliverables    []models.Deliverable
	PaymentStatus   *string
	EscalationCount *int
}

func (r *NegotiationRepo) Update(ctx context.Context, id uuid.UUID, p NegotiationPatch) error {
	var delivBytes []byte
	if p.Deliverables != nil {
		delivBytes, _ = json.Marshal(p.Deliverables)
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE negotiations SET
			status = COALESCE($1, status),
			proposed_rate = COALESCE($2, proposed_rate),
			counter_rate = COALESCE($3, counter_rate),
			final_rate = COALESCE($4, final_rate),
			deliverables = COALESCE($5, deliverables),
			payment_status = COALESCE($6, payment_status),
			escalation_count = COALESCE($7, escalation_count),
			updated_at = now()
		WHERE id = $8
	`, p.Status, p.ProposedRate, p.CounterRate, p.FinalRate, delivBytes, p.PaymentStatus, p.EscalationCount, id)
	return err
}

type NegotiationFilter struct {
	BrandID    *uuid.UUID
	CampaignID *uuid.UUID
	CreatorID  *uuid.UUID
	Status     *string
	Limit      int
	Offset     int
}

func (r *NegotiationRepo) List(ctx context.Context, f NegotiationFilter) ([]models.Negotiation, error) {
	query := `SELECT ` + negotiationColumns + ` FROM negotiations`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.BrandID != nil {
		where = append(where, fmt.Sprintf("brand_id = $%d", argIdx))
		args = append(args, *f.BrandID)
		argIdx++
	}
	if f.CampaignID != nil {
		where = append(where, fmt.Sprintf("campaign_id = $%d", argIdx))
		args = append(args, *f.CampaignID)
		argIdx++
	}
	if f.CreatorID != nil {
		where = append(where, fmt.Sprintf("creator_id = $%d", argIdx))
		args = append(args, *f.CreatorID)
		argIdx++
	}
	if f.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE "
		for i, w := range where {
			if i > 0 {
				query += " AND "
			}
			query += w
		}
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var negotiations []models.Negotiation
	for rows.Next() {
		var n models.Negotiation
		var delivBytes []byte
		if err := rows.Scan(&n.ID, &n.CampaignID, &n.CreatorID, &n.BrandID, &n.Status, &n.ProposedRate,
			&n.CounterRate, &n.FinalRate, &delivBytes, &n.PaymentStatus, &n.EscalationCount,
			&n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(delivBytes, &n.Deliverables)
		negotiations = append(negotiations, n)
	}
	return negotiations, nil
}

// ListWithCreator joins creator display info for list views.
func (r *NegotiationRepo) ListWithCreator(ctx context.Context, f NegotiationFilter) ([]models.NegotiationWithCreator, error) {
	query := `
		SELECT n.id, n.campaign_id, n.creator_id, n.brand_id, n.status, n.proposed_rate,
		       n.counter_rate, n.final_rate, n.deliverables, n.payment_status, n.escalation_count,
		       n.created_at, n.updated_at, c.display_name, c.category
		FROM negotiations n
		LEFT JOIN creators c ON c.id = n.creator_id
	`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.BrandID != nil {
		where = append(where, fmt.Sprintf("n.brand_id = $%d", argIdx))
		args = append(args, *f.BrandID)
		argIdx++
	}
	if f.CampaignID != nil {
		where = append(where, fmt.Sprintf("n.campaign_id = $%d", argIdx))
		args = append(args, *f.CampaignID)
		argIdx++
	}
	if f.CreatorID != nil {
		where = append(where, fmt.Sprintf("n.creator_id = $%d", argIdx))
		args = append(args, *f.CreatorID)
		argIdx++
	}
	if f.Status != nil {
		where = append(where, fmt.Sprintf("n.status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE "
		for i, w := range where {
			if i > 0 {
				query += " AND "
			}
			query += w
		}
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query += fmt.Sprintf(" ORDER BY n.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var negotiations []models.NegotiationWithCreator
	for rows.Next() {
		var n models.NegotiationWithCreator
		var delivBytes []byte
		if err := rows.Scan(&n.ID, &n.CampaignID, &n.CreatorID, &n.BrandID, &n.Status, &n.ProposedRate,
			&n.CounterRate, &n.FinalRate, &delivBytes, &n.PaymentStatus, &n.EscalationCount,
			&n.CreatedAt, &n.UpdatedAt, &n.CreatorName, &n.CreatorCategory); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(delivBytes, &n.Deliverables)
		negotiations = append(negotiations, n)
	}
	return negotiations, nil
}
