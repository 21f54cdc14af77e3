package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	reqBytes, _ := json.Marshal(c.Requirements)
	catBytes, _ := json.Marshal(c.TargetCategories)
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (brand_id, name, description, budget_per_creator, target_audience,
		                       requirements, target_categories, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, c.BrandID, c.Name, c.Description, c.BudgetPerCreator, c.TargetAudience,
		reqBytes, catBytes, c.StartDate, c.EndDate, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	var reqBytes, catBytes []byte
	err := r.pool.QueryRow(ctx, `
		SELECT id, brand_id, name, description, budget_per_creator, target_audience,
		       requirements, target_categories, start_date, end_date, status, created_at, updated_at
		FROM campaigns WHERE id = $1
	`, id).Scan(&c.ID, &c.BrandID, &c.Name, &c.Description, &c.BudgetPerCreator, &c.TargetAudience,
		&reqBytes, &catBytes, &c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	_ = json.Unmarshal(reqBytes, &c.Requirements)
	_ = json.Unmarshal(catBytes, &c.TargetCategories)
	return &c, nil
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	reqBytes, _ := json.Marshal(c.Requirements)
	catBytes, _ := json.Marshal(c.TargetCategories)
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET name = $1, description = $2, budget_per_creator = $3,
		       target_audience = $4, requirements = $5, target_categories = $6,
		       start_date = $7, end_date = $8, status = $9, updated_at = now()
		WHERE id = $10
	`, c.Name, c.Description, c.BudgetPerCreator, c.TargetAudience,
		reqBytes, catBytes, c.StartDate, c.EndDate, c.Status, c.ID)
	return err
}

func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

type CampaignFilter struct {
	BrandID *uuid.UUID
	Status  *string
	Limit   int
	Offset  int
}

func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.Campaign, error) {
	query := `
		SELECT id, brand_id, name, description, budget_per_creator, target_audience,
		       requirements, target_categories, start_date, end_date, status, created_at, updated_at
		FROM campaigns
	`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.BrandID != nil {
		where = append(where, fmt.Sprintf("brand_id = $%d", argIdx))
		args = append(args, *f.BrandID)
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
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		var reqBytes, catBytes []byte
		if err := rows.Scan(&c.ID, &c.BrandID, &c.Name, &c.Description, &c.BudgetPerCreator,
			&c.TargetAudience, &reqBytes, &catBytes, &c.StartDate, &c.EndDate, &c.Status,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(reqBytes, &c.Requirements)
		_ = json.Unmarshal(catBytes, &c.TargetCategories)
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}
