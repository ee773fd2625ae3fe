package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/experience/model"
	"portfolio-backend/internal/domains/experience/repository"
	"portfolio-backend/pkg/cache"
)

// ExperienceService manages the work and education timelines.
type ExperienceService interface {
	Create(ctx context.Context, req model.ExperienceRequest) (*model.Experience, error)
	Update(ctx context.Context, id uuid.UUID, req model.ExperienceRequest) (*model.Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Experience, error)
	ListGrouped(ctx context.Context) (map[string][]*model.Experience, error)
}

type experienceService struct {
	experienceRepo repository.ExperienceRepository
	invalidator    cache.Invalidator
}

func NewExperienceService(experienceRepo repository.ExperienceRepository, invalidator cache.Invalidator) ExperienceService {
	return &experienceService{
		experienceRepo: experienceRepo,
		invalidator:    invalidator,
	}
}

func (s *experienceService) Create(ctx context.Context, req model.ExperienceRequest) (*model.Experience, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exp := &model.Experience{
		ID:           uuid.New(),
		Type:         req.Type,
		Title:        req.Title,
		Organization: req.Organization,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Description:  req.Description,
		SortOrder:    0,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.experienceRepo.Create(ctx, exp); err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, cache.TagExperiences); err != nil {
		return nil, err
	}

	return exp, nil
}

func (s *experienceService) Update(ctx context.Context, id uuid.UUID, req model.ExperienceRequest) (*model.Experience, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exp, err := s.experienceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exp.Type = req.Type
	exp.Title = req.Title
	exp.Organization = req.Organization
	exp.Location = req.Location
	exp.StartDate = req.StartDate
	exp.EndDate = req.EndDate
	exp.Description = req.Description

	if err := s.experienceRepo.Update(ctx, exp); err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, cache.TagExperiences); err != nil {
		return nil, err
	}

	return exp, nil
}

func (s *experienceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.experienceRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.invalidator.Invalidate(ctx, cache.TagExperiences)
}

func (s *experienceService) List(ctx context.Context) ([]*model.Experience, error) {
	return s.experienceRepo.List(ctx)
}

// ListGrouped splits entries into the work and education timelines, each
// already in display order from the repository.
func (s *experienceService) ListGrouped(ctx context.Context) (map[string][]*model.Experience, error) {
	exps, err := s.experienceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*model.Experience)
	for _, exp := range exps {
		grouped[exp.Type] = append(grouped[exp.Type], exp)
	}

	return grouped, nil
}
