package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/message/model"
	"portfolio-backend/internal/domains/message/repository"
)

// MessageService handles contact form submissions and their inbox.
type MessageService interface {
	Submit(ctx context.Context, req model.ContactMessageRequest) (*model.ContactMessage, error)
	List(ctx context.Context, onlyUnread bool, page, limit int) ([]*model.ContactMessage, int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type messageService struct {
	messageRepo repository.MessageRepository
}

func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{
		messageRepo: messageRepo,
	}
}

func (s *messageService) Submit(ctx context.Context, req model.ContactMessageRequest) (*model.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	msg := &model.ContactMessage{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Body:      strings.TrimSpace(req.Body),
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

func (s *messageService) List(ctx context.Context, onlyUnread bool, page, limit int) ([]*model.ContactMessage, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return s.messageRepo.List(ctx, onlyUnread, page, limit)
}

func (s *messageService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.messageRepo.MarkRead(ctx, id)
}

func (s *messageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.messageRepo.Delete(ctx, id)
}
