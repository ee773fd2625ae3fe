package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project/model"
)

// ProjectRepository is the data access contract for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *model.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	UpdateImageURL(ctx context.Context, id uuid.UUID, url string) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListPublished returns the public list ordered by sort_order.
	ListPublished(ctx context.Context) ([]*model.Project, error)
	// ListAll returns every project for the admin dashboard.
	ListAll(ctx context.Context) ([]*model.Project, error)
}
