package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/user/model"
)

// UserRepository is the data access contract for users.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, page, limit int) ([]*model.User, int, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) error
}
