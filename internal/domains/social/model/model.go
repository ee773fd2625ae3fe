package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

var ErrSocialLinkNotFound = errors.New("social link not found")

// SocialLink is one entry in the reorderable list of social profiles
// shown on the public site.
type SocialLink struct {
	ID        uuid.UUID `json:"id"`
	Platform  string    `json:"platform"`
	Label     string    `json:"label"`
	URL       string    `json:"url"`
	Icon      string    `json:"icon"`
	IsVisible bool      `json:"is_visible"`
	SortOrder int       `json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SocialLinkRequest struct {
	Platform  string `json:"platform" binding:"required"`
	Label     string `json:"label" binding:"required"`
	URL       string `json:"url" binding:"required"`
	Icon      string `json:"icon"`
	IsVisible *bool  `json:"is_visible"`
}

func (r SocialLinkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Platform,
			validation.Required.Error("platform is required"),
			validation.Length(2, 50),
		),
		validation.Field(&r.Label,
			validation.Required.Error("label is required"),
			validation.Length(1, 80),
		),
		validation.Field(&r.URL,
			validation.Required.Error("url is required"),
			is.URL.Error("invalid url"),
		),
		validation.Field(&r.Icon, validation.Length(0, 50)),
	)
}

// Visible defaults to true when omitted.
func (r SocialLinkRequest) VisibleOrDefault() bool {
	if r.IsVisible == nil {
		return true
	}
	return *r.IsVisible
}
