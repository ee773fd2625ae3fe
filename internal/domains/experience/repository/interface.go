package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/experience/model"
)

type ExperienceRepository interface {
	Create(ctx context.Context, exp *model.Experience) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Experience, error)
	Update(ctx context.Context, exp *model.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all entries ordered by type, then position within the
	// type. Results are cached until the next mutation.
	List(ctx context.Context) ([]*model.Experience, error)
}
