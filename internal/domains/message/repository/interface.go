package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/message/model"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	List(ctx context.Context, onlyUnread bool, page, limit int) ([]*model.ContactMessage, int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
