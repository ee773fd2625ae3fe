package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/pkg/cache"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresSkillRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresSkillRepository(pool *pgxpool.Pool, c cache.Cache) SkillRepository {
	return &postgresSkillRepository{pool: pool, cache: c}
}

const skillColumns = `
	id, name, category, level, icon, sort_order,
	created_at, updated_at
`

var skillListCacheKey = cache.Key(cache.TagSkills, "all")

func scanSkill(row pgx.Row) (*model.Skill, error) {
	skill := &model.Skill{}
	err := row.Scan(
		&skill.ID,
		&skill.Name,
		&skill.Category,
		&skill.Level,
		&skill.Icon,
		&skill.SortOrder,
		&skill.CreatedAt,
		&skill.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to scan skill: %w", err)
	}
	return skill, nil
}

func (r *postgresSkillRepository) Create(ctx context.Context, skill *model.Skill) error {
	query := `
		INSERT INTO skills (
			id, name, category, level, icon, sort_order,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		skill.ID,
		skill.Name,
		skill.Category,
		skill.Level,
		skill.Icon,
		skill.SortOrder,
		skill.CreatedAt,
		skill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}

	return nil
}

func (r *postgresSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	return scanSkill(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresSkillRepository) Update(ctx context.Context, skill *model.Skill) error {
	query := `
		UPDATE skills
		SET name = $2, category = $3, level = $4, icon = $5, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		skill.ID,
		skill.Name,
		skill.Category,
		skill.Level,
		skill.Icon,
	)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrSkillNotFound
	}

	return nil
}

func (r *postgresSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrSkillNotFound
	}

	return nil
}

func (r *postgresSkillRepository) List(ctx context.Context) ([]*model.Skill, error) {
	var cached []*model.Skill
	if found, err := r.cache.Get(ctx, skillListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `SELECT ` + skillColumns + ` FROM skills ORDER BY category ASC, sort_order ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []*model.Skill
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}

	_ = r.cache.Set(ctx, skillListCacheKey, skills, 15*time.Minute)

	return skills, nil
}
