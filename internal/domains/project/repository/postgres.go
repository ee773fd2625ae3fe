package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/pkg/cache"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresProjectRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresProjectRepository(pool *pgxpool.Pool, c cache.Cache) ProjectRepository {
	return &postgresProjectRepository{pool: pool, cache: c}
}

const projectColumns = `
	id, slug, title, summary, description, tags,
	repo_url, demo_url, image_url,
	is_featured, is_published, sort_order,
	created_at, updated_at
`

var publishedProjectsCacheKey = cache.Key(cache.TagProjects, "published")

func scanProject(row pgx.Row) (*model.Project, error) {
	p := &model.Project{}
	var tags []string

	err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Title,
		&p.Summary,
		&p.Description,
		pq.Array(&tags),
		&p.RepoURL,
		&p.DemoURL,
		&p.ImageURL,
		&p.IsFeatured,
		&p.IsPublished,
		&p.SortOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}

	p.Tags = tags
	return p, nil
}

func (r *postgresProjectRepository) Create(ctx context.Context, p *model.Project) error {
	query := `
		INSERT INTO projects (
			id, slug, title, summary, description, tags,
			repo_url, demo_url, image_url,
			is_featured, is_published, sort_order,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Slug,
		p.Title,
		p.Summary,
		p.Description,
		pq.Array(p.Tags),
		p.RepoURL,
		p.DemoURL,
		p.ImageURL,
		p.IsFeatured,
		p.IsPublished,
		p.SortOrder,
		p.CreatedAt,
		p.UpdatedAt,
	)

	if err != nil {
		// Unique constraint on slug
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

func (r *postgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresProjectRepository) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE slug = $1`
	return scanProject(r.pool.QueryRow(ctx, query, slug))
}

func (r *postgresProjectRepository) Update(ctx context.Context, p *model.Project) error {
	query := `
		UPDATE projects
		SET slug = $2, title = $3, summary = $4, description = $5, tags = $6,
		    repo_url = $7, demo_url = $8,
		    is_featured = $9, is_published = $10, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Slug,
		p.Title,
		p.Summary,
		p.Description,
		pq.Array(p.Tags),
		p.RepoURL,
		p.DemoURL,
		p.IsFeatured,
		p.IsPublished,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to update project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}

	return nil
}

func (r *postgresProjectRepository) UpdateImageURL(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE projects SET image_url = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, url)
	if err != nil {
		return fmt.Errorf("failed to update project image: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}

	return nil
}

func (r *postgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}

	return nil
}

func (r *postgresProjectRepository) ListPublished(ctx context.Context) ([]*model.Project, error) {
	var cached []*model.Project
	if found, err := r.cache.Get(ctx, publishedProjectsCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	projects, err := r.list(ctx, `WHERE is_published = true`)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, publishedProjectsCacheKey, projects, 15*time.Minute)

	return projects, nil
}

func (r *postgresProjectRepository) ListAll(ctx context.Context) ([]*model.Project, error) {
	return r.list(ctx, "")
}

func (r *postgresProjectRepository) list(ctx context.Context, where string) ([]*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ` + where + ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, nil
}
