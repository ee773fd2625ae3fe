package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/profile/model"
	"portfolio-backend/pkg/cache"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresProfileRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresProfileRepository(pool *pgxpool.Pool, c cache.Cache) ProfileRepository {
	return &postgresProfileRepository{pool: pool, cache: c}
}

var profileCacheKey = cache.Key(cache.TagProfile, "current")

func (r *postgresProfileRepository) Get(ctx context.Context) (*model.Profile, error) {
	// Cache hit path; misses fall through to the database
	var cached model.Profile
	if found, err := r.cache.Get(ctx, profileCacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `
		SELECT id, name, headline, bio, email, location,
		       avatar_url, resume_url, updated_at
		FROM profiles
		WHERE id = $1
	`

	p := &model.Profile{}
	err := r.pool.QueryRow(ctx, query, model.ProfileID).Scan(
		&p.ID,
		&p.Name,
		&p.Headline,
		&p.Bio,
		&p.Email,
		&p.Location,
		&p.AvatarURL,
		&p.ResumeURL,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	_ = r.cache.Set(ctx, profileCacheKey, p, 15*time.Minute)

	return p, nil
}

func (r *postgresProfileRepository) Upsert(ctx context.Context, p *model.Profile) error {
	query := `
		INSERT INTO profiles (id, name, headline, bio, email, location, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			headline = EXCLUDED.headline,
			bio = EXCLUDED.bio,
			email = EXCLUDED.email,
			location = EXCLUDED.location,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		model.ProfileID,
		p.Name,
		p.Headline,
		p.Bio,
		p.Email,
		p.Location,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

func (r *postgresProfileRepository) UpdateAvatarURL(ctx context.Context, url string) error {
	return r.updateColumn(ctx, "avatar_url", url)
}

func (r *postgresProfileRepository) UpdateResumeURL(ctx context.Context, url string) error {
	return r.updateColumn(ctx, "resume_url", url)
}

func (r *postgresProfileRepository) updateColumn(ctx context.Context, column, url string) error {
	// column is a compile-time constant, never user input
	query := fmt.Sprintf(`UPDATE profiles SET %s = $2, updated_at = NOW() WHERE id = $1`, column)

	result, err := r.pool.Exec(ctx, query, model.ProfileID, url)
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", column, err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProfileNotFound
	}

	return nil
}
