package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreatorRepo struct {
	pool *pgxpool.Pool
}

func NewCreatorRepo(pool *pgxpool.Pool) *CreatorRepo {
	return &CreatorRepo{pool: pool}
}

// ListAll returns the full creator catalog ordered by creation time. There
// is deliberately no filtering or pagination at this layer — discovery
// filters are applied in memory over the whole snapshot.
func (r *CreatorRepo) ListAll(ctx context.Context) ([]models.Creator, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, display_name, email, phone, category, engagement_rate,
		       base_rate, available, platforms, created_at, updated_at
		FROM creators ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creators []models.Creator
	for rows.Next() {
		var c models.Creator
		var platBytes []byte
		if err := rows.Scan(&c.ID, &c.DisplayName, &c.Email, &c.Phone, &c.Category,
			&c.EngagementRate, &c.BaseRate, &c.Available, &platBytes,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(platBytes, &c.Platforms)
		creators = append(creators, c)
	}
	return creators, nil
}

func (r *CreatorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Creator, error) {
	var c models.Creator
	var platBytes []byte
	err := r.pool.QueryRow(ctx, `
		SELECT id, display_name, email, phone, category, engagement_rate,
		       base_rate, available, platforms, created_at, updated_at
		FROM creators WHERE id = $1
	`, id).Scan(&c.ID, &c.DisplayName, &c.Email, &c.Phone, &c.Category,
		&c.EngagementRate, &c.BaseRate, &c.Available, &platBytes,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	_ = json.Unmarshal(platBytes, &c.Platforms)
	return &c, nil
}

// Create is used by the seeder only; the API never writes creators.
func (r *CreatorRepo) Create(ctx context.Context, c *models.Creator) error {
	platBytes, _ := json.Marshal(c.Platforms)
	return r.pool.QueryRow(ctx, `
		INSERT INTO creators (display_name, email, phone, category, engagement_rate, base_rate, available, platforms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, c.DisplayName, c.Email, c.Phone, c.Category, c.EngagementRate, c.BaseRate, c.Available, platBytes,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}
