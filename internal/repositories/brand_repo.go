package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BrandRepo struct {
	pool *pgxpool.Pool
}

func NewBrandRepo(pool *pgxpool.Pool) *BrandRepo {
	return &BrandRepo{pool: pool}
}

// UpsertByProviderUID creates the brand row on first sign-in and refreshes
// identity fields on every subsequent one.
func (r *BrandRepo) UpsertByProviderUID(ctx context.Context, providerUID, email string, displayName, avatarURL *string) (*models.Brand, error) {
	var b models.Brand
	err := r.pool.QueryRow(ctx, `
		INSERT INTO brands (provider_uid, email, display_name, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider_uid) DO UPDATE SET
			email = EXCLUDED.email,
			display_name = COALESCE(EXCLUDED.display_name, brands.display_name),
			avatar_url = COALESCE(EXCLUDED.avatar_url, brands.avatar_url),
			updated_at = now()
		RETURNING id, provider_uid, email, display_name, avatar_url, company_name,
		          website, industry, profile_complete, created_at, updated_at
	`, providerUID, email, displayName, avatarURL).Scan(
		&b.ID, &b.ProviderUID, &b.Email, &b.DisplayName, &b.AvatarURL, &b.CompanyName,
		&b.Website, &b.Industry, &b.ProfileComplete, &b.CreatedAt, &b.UpdatedAt,
	)
	return &b, err
}

func (r *BrandRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var b models.Brand
	err := r.pool.QueryRow(ctx, `
		SELECT id, provider_uid, email, display_name, avatar_url, company_name,
		       website, industry, profile_complete, created_at, updated_at
		FROM brands WHERE id = $1
	`, id).Scan(&b.ID, &b.ProviderUID, &b.Email, &b.DisplayName, &b.AvatarURL, &b.CompanyName,
		&b.Website, &b.Industry, &b.ProfileComplete, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateProfile completes onboarding: company fields are required by the
// caller, profile_complete flips to true.
func (r *BrandRepo) UpdateProfile(ctx context.Context, id uuid.UUID, displayName, companyName, website, industry *string) (*models.Brand, error) {
	var b models.Brand
	err := r.pool.QueryRow(ctx, `
		UPDATE brands SET
			display_name = COALESCE($1, display_name),
			company_name = COALESCE($2, company_name),
			website = COALESCE($3, website),
			industry = COALESCE($4, industry),
			profile_complete = true,
			updated_at = now()
		WHERE id = $5
		RETURNING id, provider_uid, email, display_name, avatar_url, company_name,
		          website, industry, profile_complete, created_at, updated_at
	`, displayName, companyName, website, industry, id).Scan(
		&b.ID, &b.ProviderUID, &b.Email, &b.DisplayName, &b.AvatarURL, &b.CompanyName,
		&b.Website, &b.Industry, &b.ProfileComplete, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
