package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/social/model"
	"portfolio-backend/internal/domains/social/repository"
	"portfolio-backend/pkg/cache"
)

// SocialService manages the reorderable list of social links.
type SocialService interface {
	Create(ctx context.Context, req model.SocialLinkRequest) (*model.SocialLink, error)
	Update(ctx context.Context, id uuid.UUID, req model.SocialLinkRequest) (*model.SocialLink, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListVisible(ctx context.Context) ([]*model.SocialLink, error)
	ListAll(ctx context.Context) ([]*model.SocialLink, error)
}

type socialService struct {
	socialRepo  repository.SocialRepository
	invalidator cache.Invalidator
}

func NewSocialService(socialRepo repository.SocialRepository, invalidator cache.Invalidator) SocialService {
	return &socialService{
		socialRepo:  socialRepo,
		invalidator: invalidator,
	}
}

func (s *socialService) Create(ctx context.Context, req model.SocialLinkRequest) (*model.SocialLink, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// New links start at position 0; the admin UI appends visually and
	// the next reorder rewrites all positions anyway.
	link := &model.SocialLink{
		ID:        uuid.New(),
		Platform:  req.Platform,
		Label:     req.Label,
		URL:       req.URL,
		Icon:      req.Icon,
		IsVisible: req.VisibleOrDefault(),
		SortOrder: 0,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.socialRepo.Create(ctx, link); err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, cache.TagSocials); err != nil {
		return nil, err
	}

	return link, nil
}

func (s *socialService) Update(ctx context.Context, id uuid.UUID, req model.SocialLinkRequest) (*model.SocialLink, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	link, err := s.socialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	link.Platform = req.Platform
	link.Label = req.Label
	link.URL = req.URL
	link.Icon = req.Icon
	link.IsVisible = req.VisibleOrDefault()

	if err := s.socialRepo.Update(ctx, link); err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, cache.TagSocials); err != nil {
		return nil, err
	}

	return link, nil
}

func (s *socialService) Delete(ctx context.Context, id uuid.UUID) error {
	// Siblings keep their positions; gaps are tolerated because the
	// next reorder rewrites the whole group.
	if err := s.socialRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.invalidator.Invalidate(ctx, cache.TagSocials)
}

func (s *socialService) ListVisible(ctx context.Context) ([]*model.SocialLink, error) {
	return s.socialRepo.ListVisible(ctx)
}

func (s *socialService) ListAll(ctx context.Context) ([]*model.SocialLink, error) {
	return s.socialRepo.ListAll(ctx)
}
