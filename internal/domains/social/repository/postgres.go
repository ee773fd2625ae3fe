package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/social/model"
	"portfolio-backend/pkg/cache"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresSocialRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresSocialRepository(pool *pgxpool.Pool, c cache.Cache) SocialRepository {
	return &postgresSocialRepository{pool: pool, cache: c}
}

const socialColumns = `
	id, platform, label, url, icon, is_visible, sort_order,
	created_at, updated_at
`

var visibleLinksCacheKey = cache.Key(cache.TagSocials, "visible")

func scanSocialLink(row pgx.Row) (*model.SocialLink, error) {
	link := &model.SocialLink{}
	err := row.Scan(
		&link.ID,
		&link.Platform,
		&link.Label,
		&link.URL,
		&link.Icon,
		&link.IsVisible,
		&link.SortOrder,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSocialLinkNotFound
		}
		return nil, fmt.Errorf("failed to scan social link: %w", err)
	}
	return link, nil
}

func (r *postgresSocialRepository) Create(ctx context.Context, link *model.SocialLink) error {
	query := `
		INSERT INTO social_links (
			id, platform, label, url, icon, is_visible, sort_order,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		link.ID,
		link.Platform,
		link.Label,
		link.URL,
		link.Icon,
		link.IsVisible,
		link.SortOrder,
		link.CreatedAt,
		link.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create social link: %w", err)
	}

	return nil
}

func (r *postgresSocialRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.SocialLink, error) {
	query := `SELECT ` + socialColumns + ` FROM social_links WHERE id = $1`
	return scanSocialLink(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresSocialRepository) Update(ctx context.Context, link *model.SocialLink) error {
	query := `
		UPDATE social_links
		SET platform = $2, label = $3, url = $4, icon = $5,
		    is_visible = $6, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		link.ID,
		link.Platform,
		link.Label,
		link.URL,
		link.Icon,
		link.IsVisible,
	)
	if err != nil {
		return fmt.Errorf("failed to update social link: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrSocialLinkNotFound
	}

	return nil
}

func (r *postgresSocialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM social_links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete social link: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrSocialLinkNotFound
	}

	return nil
}

func (r *postgresSocialRepository) ListVisible(ctx context.Context) ([]*model.SocialLink, error) {
	var cached []*model.SocialLink
	if found, err := r.cache.Get(ctx, visibleLinksCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	links, err := r.list(ctx, `WHERE is_visible = true`)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, visibleLinksCacheKey, links, 15*time.Minute)

	return links, nil
}

func (r *postgresSocialRepository) ListAll(ctx context.Context) ([]*model.SocialLink, error) {
	return r.list(ctx, "")
}

func (r *postgresSocialRepository) list(ctx context.Context, where string) ([]*model.SocialLink, error) {
	query := `SELECT ` + socialColumns + ` FROM social_links ` + where + ` ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}
	defer rows.Close()

	var links []*model.SocialLink
	for rows.Next() {
		link, err := scanSocialLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, nil
}
