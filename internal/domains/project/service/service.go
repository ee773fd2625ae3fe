package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/domains/project/repository"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/cache"
)

// ProjectService manages portfolio projects.
type ProjectService interface {
	Create(ctx context.Context, req model.ProjectRequest) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, req model.ProjectRequest) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, id uuid.UUID, data []byte, contentType string) (string, error)
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
	ListPublished(ctx context.Context) ([]*model.Project, error)
	ListAll(ctx context.Context) ([]*model.Project, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	blobs       storage.BlobStore
	invalidator cache.Invalidator
}

func NewProjectService(
	projectRepo repository.ProjectRepository,
	blobs storage.BlobStore,
	invalidator cache.Invalidator,
) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		blobs:       blobs,
		invalidator: invalidator,
	}
}

func (s *projectService) Create(ctx context.Context, req model.ProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := &model.Project{
		ID:          uuid.New(),
		Slug:        utils.GenerateSlug(req.Title),
		Title:       req.Title,
		Summary:     req.Summary,
		Description: req.Description,
		Tags:        req.Tags,
		RepoURL:     req.RepoURL,
		DemoURL:     req.DemoURL,
		IsFeatured:  req.IsFeatured,
		IsPublished: req.IsPublished,
		SortOrder:   0,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.projectRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, cache.TagProjects); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req model.ProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Slug follows the title so published URLs stay predictable
	p.Slug = utils.GenerateSlug(req.Title)
	p.Title = req.Title
	p.Summary = req.Summary
	p.Description = req.Description
	p.Tags = req.Tags
	p.RepoURL = req.RepoURL
	p.DemoURL = req.DemoURL
	p.IsFeatured = req.IsFeatured
	p.IsPublished = req.IsPublished

	if err := s.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, cache.TagProjects); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.invalidator.Invalidate(ctx, cache.TagProjects)
}

func (s *projectService) UploadImage(ctx context.Context, id uuid.UUID, data []byte, contentType string) (string, error) {
	// Fail before uploading if the project is gone
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		return "", err
	}

	key := fmt.Sprintf("projects/%s/cover-%s", id, uuid.NewString())

	url, err := s.blobs.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload project image: %w", err)
	}

	if err := s.projectRepo.UpdateImageURL(ctx, id, url); err != nil {
		return "", err
	}

	if err := s.invalidator.Invalidate(ctx, cache.TagProjects); err != nil {
		return "", err
	}

	return url, nil
}

func (s *projectService) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	p, err := s.projectRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// Unpublished projects are not visible through the public lookup
	if !p.IsPublished {
		return nil, model.ErrProjectNotFound
	}

	return p, nil
}

func (s *projectService) ListPublished(ctx context.Context) ([]*model.Project, error) {
	return s.projectRepo.ListPublished(ctx)
}

func (s *projectService) ListAll(ctx context.Context) ([]*model.Project, error) {
	return s.projectRepo.ListAll(ctx)
}
