package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/experience/model"
	"portfolio-backend/pkg/cache"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresExperienceRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresExperienceRepository(pool *pgxpool.Pool, c cache.Cache) ExperienceRepository {
	return &postgresExperienceRepository{pool: pool, cache: c}
}

const experienceColumns = `
	id, type, title, organization, location, start_date, end_date,
	description, sort_order, created_at, updated_at
`

var experienceListCacheKey = cache.Key(cache.TagExperiences, "all")

func scanExperience(row pgx.Row) (*model.Experience, error) {
	exp := &model.Experience{}
	err := row.Scan(
		&exp.ID,
		&exp.Type,
		&exp.Title,
		&exp.Organization,
		&exp.Location,
		&exp.StartDate,
		&exp.EndDate,
		&exp.Description,
		&exp.SortOrder,
		&exp.CreatedAt,
		&exp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("failed to scan experience: %w", err)
	}
	return exp, nil
}

func (r *postgresExperienceRepository) Create(ctx context.Context, exp *model.Experience) error {
	query := `
		INSERT INTO experiences (
			id, type, title, organization, location, start_date, end_date,
			description, sort_order, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		exp.ID,
		exp.Type,
		exp.Title,
		exp.Organization,
		exp.Location,
		exp.StartDate,
		exp.EndDate,
		exp.Description,
		exp.SortOrder,
		exp.CreatedAt,
		exp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}

	return nil
}

func (r *postgresExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`
	return scanExperience(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresExperienceRepository) Update(ctx context.Context, exp *model.Experience) error {
	query := `
		UPDATE experiences
		SET type = $2, title = $3, organization = $4, location = $5,
		    start_date = $6, end_date = $7, description = $8, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		exp.ID,
		exp.Type,
		exp.Title,
		exp.Organization,
		exp.Location,
		exp.StartDate,
		exp.EndDate,
		exp.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrExperienceNotFound
	}

	return nil
}

func (r *postgresExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrExperienceNotFound
	}

	return nil
}

func (r *postgresExperienceRepository) List(ctx context.Context) ([]*model.Experience, error) {
	var cached []*model.Experience
	if found, err := r.cache.Get(ctx, experienceListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `SELECT ` + experienceColumns + ` FROM experiences ORDER BY type ASC, sort_order ASC, start_date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	var exps []*model.Experience
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		exps = append(exps, exp)
	}

	_ = r.cache.Set(ctx, experienceListCacheKey, exps, 15*time.Minute)

	return exps, nil
}
