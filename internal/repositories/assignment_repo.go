package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssignmentRepo struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepo(pool *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{pool: pool}
}

// AddCampaign adds campaignID to the (brand, creator) assignment, creating
// the row if needed. The add is idempotent and atomic: a guarded UPDATE
// appends only when the campaign is absent, and the fallback INSERT yields
// to a concurrent writer via ON CONFLICT DO NOTHING. Returns true when the
// campaign was already present.
func (r *AssignmentRepo) AddCampaign(ctx context.Context, brandID, creatorID, campaignID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE creator_assignments
		SET campaign_ids = array_append(campaign_ids, $3), updated_at = now()
		WHERE brand_id = $1 AND creator_id = $2 AND NOT ($3 = ANY(campaign_ids))
	`, brandID, creatorID, campaignID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 1 {
		return false, nil
	}

	tag, err = r.pool.Exec(ctx, `
		INSERT INTO creator_assignments (brand_id, creator_id, campaign_ids)
		VALUES ($1, $2, ARRAY[$3]::uuid[])
		ON CONFLICT (brand_id, creator_id) DO NOTHING
	`, brandID, creatorID, campaignID)
	if err != nil {
		return false, err
	}
	// Neither update nor insert took effect: the row exists and already
	// carries this campaign.
	return tag.RowsAffected() == 0, nil
}

// RemoveCampaign takes campaignID out of the assignment's list and deletes
// the row once the list is empty.
func (r *AssignmentRepo) RemoveCampaign(ctx context.Context, brandID, creatorID, campaignID uuid.UUID) error {
	var remaining int
	err := r.pool.QueryRow(ctx, `
		UPDATE creator_assignments
		SET campaign_ids = array_remove(campaign_ids, $3), updated_at = now()
		WHERE brand_id = $1 AND creator_id = $2
		RETURNING cardinality(campaign_ids)
	`, brandID, creatorID, campaignID).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}

	if remaining == 0 {
		_, err = r.pool.Exec(ctx, `
			DELETE FROM creator_assignments
			WHERE brand_id = $1 AND creator_id = $2 AND cardinality(campaign_ids) = 0
		`, brandID, creatorID)
	}
	return err
}

// GetByBrandAndCreator returns nil (no error) when no assignment exists.
func (r *AssignmentRepo) GetByBrandAndCreator(ctx context.Context, brandID, creatorID uuid.UUID) (*models.CreatorAssignment, error) {
	var a models.CreatorAssignment
	err := r.pool.QueryRow(ctx, `
		SELECT id, brand_id, creator_id, campaign_ids, phone_discovered, discovered_phone, created_at, updated_at
		FROM creator_assignments WHERE brand_id = $1 AND creator_id = $2
	`, brandID, creatorID).Scan(&a.ID, &a.BrandID, &a.CreatorID, &a.CampaignIDs,
		&a.PhoneDiscovered, &a.DiscoveredPhone, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepo) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]models.CreatorAssignment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, brand_id, creator_id, campaign_ids, phone_discovered, discovered_phone, created_at, updated_at
		FROM creator_assignments WHERE brand_id = $1 ORDER BY created_at DESC
	`, brandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []models.CreatorAssignment
	for rows.Next() {
		var a models.CreatorAssignment
		if err := rows.Scan(&a.ID, &a.BrandID, &a.CreatorID, &a.CampaignIDs,
			&a.PhoneDiscovered, &a.DiscoveredPhone, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

// SetDiscoveredPhone records a phone number found for the creator during
// outreach; the agent call path reads it back.
func (r *AssignmentRepo) SetDiscoveredPhone(ctx context.Context, brandID, creatorID uuid.UUID, phone string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE creator_assignments
		SET phone_discovered = true, discovered_phone = $3, updated_at = now()
		WHERE brand_id = $1 AND creator_id = $2
	`, brandID, creatorID, phone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
