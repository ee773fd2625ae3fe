package repository

import (
	"context"

	"portfolio-backend/internal/domains/profile/model"
)

// ProfileRepository is the data access contract for the singleton profile.
type ProfileRepository interface {
	Get(ctx context.Context) (*model.Profile, error)
	Upsert(ctx context.Context, p *model.Profile) error
	UpdateAvatarURL(ctx context.Context, url string) error
	UpdateResumeURL(ctx context.Context, url string) error
}
