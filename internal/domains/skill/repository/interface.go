package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill/model"
)

type SkillRepository interface {
	Create(ctx context.Context, skill *model.Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all skills ordered by category, then position within
	// the category. Results are cached until the next mutation.
	List(ctx context.Context) ([]*model.Skill, error)
}
