package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/social/model"
)

// SocialRepository is the data access contract for social links.
type SocialRepository interface {
	Create(ctx context.Context, link *model.SocialLink) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.SocialLink, error)
	Update(ctx context.Context, link *model.SocialLink) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListVisible returns the public list ordered by sort_order.
	ListVisible(ctx context.Context) ([]*model.SocialLink, error)
	// ListAll returns every link for the admin dashboard.
	ListAll(ctx context.Context) ([]*model.SocialLink, error)
}
