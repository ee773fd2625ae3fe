package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/profile/model"
	"portfolio-backend/internal/domains/profile/repository"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/cache"
)

// ProfileService manages the singleton site-owner profile.
type ProfileService interface {
	Get(ctx context.Context) (*model.Profile, error)
	Upsert(ctx context.Context, req model.UpsertProfileRequest) (*model.Profile, error)
	UploadAvatar(ctx context.Context, data []byte, contentType string) (string, error)
	UploadResume(ctx context.Context, data []byte, contentType string) (string, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	blobs       storage.BlobStore
	invalidator cache.Invalidator
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	blobs storage.BlobStore,
	invalidator cache.Invalidator,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		blobs:       blobs,
		invalidator: invalidator,
	}
}

func (s *profileService) Get(ctx context.Context) (*model.Profile, error) {
	return s.profileRepo.Get(ctx)
}

func (s *profileService) Upsert(ctx context.Context, req model.UpsertProfileRequest) (*model.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := &model.Profile{
		ID:        model.ProfileID,
		Name:      req.Name,
		Headline:  req.Headline,
		Bio:       req.Bio,
		Email:     req.Email,
		Location:  req.Location,
		UpdatedAt: time.Now(),
	}

	if err := s.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	// Invalidation is awaited so the next public read is fresh
	if err := s.invalidator.Invalidate(ctx, cache.TagProfile); err != nil {
		return nil, err
	}

	return s.profileRepo.Get(ctx)
}

func (s *profileService) UploadAvatar(ctx context.Context, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("profile/avatar/%s", uuid.NewString())

	url, err := s.blobs.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.profileRepo.UpdateAvatarURL(ctx, url); err != nil {
		return "", err
	}

	if err := s.invalidator.Invalidate(ctx, cache.TagProfile); err != nil {
		return "", err
	}

	return url, nil
}

func (s *profileService) UploadResume(ctx context.Context, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("profile/resume/%s", uuid.NewString())

	url, err := s.blobs.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	if err := s.profileRepo.UpdateResumeURL(ctx, url); err != nil {
		return "", err
	}

	if err := s.invalidator.Invalidate(ctx, cache.TagProfile); err != nil {
		return "", err
	}

	return url, nil
}
